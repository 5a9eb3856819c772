package portfolio

import (
	"strings"

	"portfolio-server-go/catalog"
	"portfolio-server-go/models"
)

// DefaultCategoryLabel is shown on the badge of uncategorized experiences.
const DefaultCategoryLabel = "Learning"

// Card is the structured form of one timeline entry. Empty sections are
// left zero and are not rendered.
type Card struct {
	Index         int
	CategoryClass string
	Category      string
	CategoryIcon  string
	Title         string
	ImageURL      string
	Hours         string

	Meta         []MetaItem
	Description  string
	Skills       []string
	Learning     []LearningItem
	Achievements string
	Contact      *Contact
	Gallery      []string
}

// MetaItem is one entry of the card's meta line
type MetaItem struct {
	Icon string
	Text string
}

// LearningItem is one reflective subsection
type LearningItem struct {
	Title string
	Text  string
}

// Contact is the instructor or main contact of an experience
type Contact struct {
	Name string
	Role string
}

// Builder turns record fields into cards
type Builder struct {
	Categories *catalog.CategoryTable
	Locale     Locale
}

// BuildCard derives a Card from a record's fields. It has no side effects.
func (b *Builder) BuildCard(f models.Fields, index int) Card {
	category := f.Text(models.FieldCategoryPrimary)
	label := category
	if !f.Has(models.FieldCategoryPrimary) {
		label = DefaultCategoryLabel
	}

	hours := "0"
	if f.Has(models.FieldTotalHours) {
		hours = f.Text(models.FieldTotalHours)
	}

	card := Card{
		Index:         index,
		CategoryClass: b.Categories.Class(category),
		Category:      label,
		CategoryIcon:  b.Categories.Icon(label),
		Title:         f.Text(models.FieldExperienceName),
		ImageURL:      b.imageURL(f),
		Hours:         hours,
		Meta:          b.meta(f),
		Skills:        SplitSkills(f.Text(models.FieldSkills)),
		Learning:      learning(f),
		Achievements:  f.FirstOf(models.FieldKeyAchievements, models.FieldKeyTakeAways),
		Contact:       contact(f),
	}
	if f.Has(models.FieldFullDescription) {
		card.Description = f.Text(models.FieldFullDescription)
	}

	gallery := ExtractPhotos(f)
	if len(gallery) > GalleryLimit {
		gallery = gallery[:GalleryLimit]
	}
	card.Gallery = gallery

	return card
}

// imageURL prefers the key image, then the first photo, then the
// category's default illustration.
func (b *Builder) imageURL(f models.Fields) string {
	if u := FirstURL(f.Text(models.FieldKeyImage)); u != "" {
		return u
	}
	if u := FirstURL(f.Text(models.FieldPhotos)); u != "" {
		return u
	}
	return b.Categories.Image(f.Text(models.FieldCategoryPrimary))
}

func (b *Builder) meta(f models.Fields) []MetaItem {
	var items []MetaItem

	if f.Has(models.FieldTermSeason) || f.Has(models.FieldAcademicYear) {
		when := strings.TrimSpace(f.FirstOf(models.FieldTermSeason) + " " + f.FirstOf(models.FieldAcademicYear))
		when += b.Locale.DateRange(f.FirstOf(models.FieldStartDate), f.FirstOf(models.FieldEndDate))
		items = append(items, MetaItem{Icon: "📅", Text: when})
	}

	if location := f.FirstOf(models.FieldOrganizationName, models.FieldLocationVenue); location != "" {
		if f.Has(models.FieldCity) {
			location += ", " + f.Text(models.FieldCity)
		}
		items = append(items, MetaItem{Icon: "📍", Text: location})
	}

	if f.Has(models.FieldTotalHours) {
		items = append(items, MetaItem{Icon: "⏱️", Text: f.Text(models.FieldTotalHours) + " hours"})
	}

	if f.Has(models.FieldGrade) || f.Has(models.FieldAge) {
		var parts []string
		if f.Has(models.FieldGrade) {
			parts = append(parts, "Grade "+f.Text(models.FieldGrade))
		}
		if f.Has(models.FieldAge) {
			parts = append(parts, "Age "+f.Text(models.FieldAge))
		}
		items = append(items, MetaItem{Icon: "🎓", Text: strings.Join(parts, " • ")})
	}

	return items
}

func learning(f models.Fields) []LearningItem {
	sections := []struct {
		field string
		title string
	}{
		{models.FieldWhatDidYouLearn, "💡 What I Learned"},
		{models.FieldSurprise, "✨ What Surprised Me"},
		{models.FieldChallenges, "💪 Challenges I Faced"},
	}

	var items []LearningItem
	for _, s := range sections {
		if f.Has(s.field) {
			items = append(items, LearningItem{Title: s.title, Text: f.Text(s.field)})
		}
	}
	return items
}

func contact(f models.Fields) *Contact {
	name := f.FirstOf(models.FieldInstructorNames, models.FieldMainContact)
	if name == "" {
		return nil
	}
	return &Contact{
		Name: name,
		Role: f.FirstOf(models.FieldInstructorCredentials, models.FieldTheirRoleTitle),
	}
}
