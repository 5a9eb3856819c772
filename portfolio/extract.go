package portfolio

import (
	"regexp"
	"strings"

	"portfolio-server-go/models"
)

// urlPattern matches https links embedded in free text. A link ends at
// whitespace or a closing parenthesis, which is how markdown-style and
// "name (url)" cells wrap them.
var urlPattern = regexp.MustCompile(`https://[^\s)]+`)

// GalleryLimit caps the number of photos shown per card.
const GalleryLimit = 6

// ExtractURLs returns every https URL in text, in order of appearance.
func ExtractURLs(text string) []string {
	if text == "" {
		return nil
	}
	return urlPattern.FindAllString(text, -1)
}

// FirstURL returns the first https URL in text, or "".
func FirstURL(text string) string {
	return urlPattern.FindString(text)
}

// ExtractPhotos collects the URLs of the Photos field followed by those of
// Key_Image.
func ExtractPhotos(f models.Fields) []string {
	var photos []string
	photos = append(photos, ExtractURLs(f.Text(models.FieldPhotos))...)
	photos = append(photos, ExtractURLs(f.Text(models.FieldKeyImage))...)
	return photos
}

// SplitSkills splits a comma-separated skills cell into trimmed, non-empty
// entries. Order and duplicates are kept.
func SplitSkills(s string) []string {
	if s == "" {
		return nil
	}
	var skills []string
	for _, part := range strings.Split(s, ",") {
		if skill := strings.TrimSpace(part); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}
