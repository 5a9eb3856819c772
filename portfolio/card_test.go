package portfolio

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-server-go/catalog"
	"portfolio-server-go/models"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return NewRenderer(c.CategoryTable(), DefaultLocale())
}

func fullFields() models.Fields {
	return models.Fields{
		models.FieldExperienceName:        "Summer Robotics Camp",
		models.FieldCategoryPrimary:       "Science",
		models.FieldTotalHours:            float64(40),
		models.FieldTermSeason:            "Summer",
		models.FieldAcademicYear:          "2024",
		models.FieldStartDate:             "2024-06-10",
		models.FieldEndDate:               "2024-06-21",
		models.FieldOrganizationName:      "Makers Lab",
		models.FieldCity:                  "Portland",
		models.FieldGrade:                 float64(8),
		models.FieldAge:                   float64(13),
		models.FieldFullDescription:       "Built a line-following robot.",
		models.FieldSkills:                "Python, Soldering, , Teamwork",
		models.FieldWhatDidYouLearn:       "Sensors are noisy.",
		models.FieldSurprise:              "How fast it went.",
		models.FieldChallenges:            "Calibrating motors.",
		models.FieldKeyTakeAways:          "Iterate quickly.",
		models.FieldMainContact:           "Dr. Lee",
		models.FieldTheirRoleTitle:        "Lead Instructor",
		models.FieldPhotos:                "https://img.example.com/1.jpg, https://img.example.com/2.jpg",
		models.FieldKeyImage:              "https://img.example.com/key.jpg",
		models.FieldInstructorCredentials: "",
	}
}

func TestBuildCardFull(t *testing.T) {
	r := newTestRenderer(t)
	card := r.BuildCard(fullFields(), 0)

	assert.Equal(t, "science", card.CategoryClass)
	assert.Equal(t, "🔬", card.CategoryIcon)
	assert.Equal(t, "Science", card.Category)
	assert.Equal(t, "Summer Robotics Camp", card.Title)
	assert.Equal(t, "https://img.example.com/key.jpg", card.ImageURL)
	assert.Equal(t, "40", card.Hours)

	assert.Equal(t, []MetaItem{
		{Icon: "📅", Text: "Summer 2024 (Jun 10 - Jun 21, 2024)"},
		{Icon: "📍", Text: "Makers Lab, Portland"},
		{Icon: "⏱️", Text: "40 hours"},
		{Icon: "🎓", Text: "Grade 8 • Age 13"},
	}, card.Meta)

	assert.Equal(t, []string{"Python", "Soldering", "Teamwork"}, card.Skills)
	require.Len(t, card.Learning, 3)
	assert.Equal(t, "💡 What I Learned", card.Learning[0].Title)
	assert.Equal(t, "✨ What Surprised Me", card.Learning[1].Title)
	assert.Equal(t, "💪 Challenges I Faced", card.Learning[2].Title)

	// achievements fall back to take-aways
	assert.Equal(t, "Iterate quickly.", card.Achievements)
	require.NotNil(t, card.Contact)
	assert.Equal(t, Contact{Name: "Dr. Lee", Role: "Lead Instructor"}, *card.Contact)

	// the comma after the first photo belongs to the URL match
	assert.Equal(t, []string{
		"https://img.example.com/1.jpg,",
		"https://img.example.com/2.jpg",
		"https://img.example.com/key.jpg",
	}, card.Gallery)
}

func TestBuildCardMinimal(t *testing.T) {
	r := newTestRenderer(t)
	card := r.BuildCard(models.Fields{
		models.FieldExperienceName:  "Pottery",
		models.FieldCategoryPrimary: "Visual Arts",
	}, 3)

	assert.Equal(t, "arts", card.CategoryClass)
	assert.Equal(t, "🎨", card.CategoryIcon)
	assert.Contains(t, card.ImageURL, "photo-1513364776144-60967b0f800f")
	assert.Equal(t, "0", card.Hours)
	assert.Empty(t, card.Meta)
	assert.Empty(t, card.Description)
	assert.Empty(t, card.Skills)
	assert.Empty(t, card.Learning)
	assert.Empty(t, card.Achievements)
	assert.Nil(t, card.Contact)
	assert.Empty(t, card.Gallery)

	html, err := r.RenderCard(card)
	require.NoError(t, err)
	assert.Contains(t, html, `data-category="arts"`)
	assert.Contains(t, html, "photo-1513364776144-60967b0f800f")
	assert.Contains(t, html, "🎨 Visual Arts")
	assert.Contains(t, html, "⏱️ 0 hours")
	for _, absent := range []string{
		"exp-meta-info", "exp-description", "exp-skills", "exp-learning",
		"exp-achievements", "exp-contact", "exp-gallery",
	} {
		assert.NotContains(t, html, absent)
	}
}

func TestBuildCardFallbacks(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("uncategorized", func(t *testing.T) {
		card := r.BuildCard(models.Fields{models.FieldExperienceName: "Chess club"}, 0)
		assert.Equal(t, "Learning", card.Category)
		assert.Equal(t, "📖", card.CategoryIcon)
		assert.Equal(t, "other", card.CategoryClass)
		assert.Contains(t, card.ImageURL, "photo-1497633762265-9d179a990aa6")
	})

	t.Run("unlisted category", func(t *testing.T) {
		card := r.BuildCard(models.Fields{models.FieldCategoryPrimary: "Cooking"}, 0)
		assert.Equal(t, "Cooking", card.Category)
		assert.Equal(t, "📖", card.CategoryIcon)
		assert.Equal(t, "other", card.CategoryClass)
	})

	t.Run("first photo when no key image", func(t *testing.T) {
		card := r.BuildCard(models.Fields{
			models.FieldPhotos:   "see https://p/1.jpg and https://p/2.jpg",
			models.FieldKeyImage: "no link here",
		}, 0)
		assert.Equal(t, "https://p/1.jpg", card.ImageURL)
	})

	t.Run("venue and partial meta", func(t *testing.T) {
		card := r.BuildCard(models.Fields{
			models.FieldLocationVenue: "City Hall",
			models.FieldAcademicYear:  "2023-2024",
			models.FieldAge:           float64(12),
			models.FieldStartDate:     "2023-10-02",
		}, 0)
		assert.Equal(t, []MetaItem{
			{Icon: "📅", Text: "2023-2024 (Oct 2)"},
			{Icon: "📍", Text: "City Hall"},
			{Icon: "🎓", Text: "Age 12"},
		}, card.Meta)
	})

	t.Run("season without year has no trailing space", func(t *testing.T) {
		card := r.BuildCard(models.Fields{models.FieldTermSeason: "Summer"}, 0)
		assert.Equal(t, []MetaItem{{Icon: "📅", Text: "Summer"}}, card.Meta)
	})

	t.Run("achievements preferred over take-aways", func(t *testing.T) {
		card := r.BuildCard(models.Fields{
			models.FieldKeyAchievements: "Won regionals",
			models.FieldKeyTakeAways:    "Practice",
		}, 0)
		assert.Equal(t, "Won regionals", card.Achievements)
	})

	t.Run("instructor preferred and role optional", func(t *testing.T) {
		card := r.BuildCard(models.Fields{
			models.FieldInstructorNames: "Ms. Ray",
			models.FieldMainContact:     "Front desk",
		}, 0)
		require.NotNil(t, card.Contact)
		assert.Equal(t, Contact{Name: "Ms. Ray"}, *card.Contact)

		html, err := r.RenderCard(card)
		require.NoError(t, err)
		assert.Contains(t, html, "Ms. Ray")
		assert.NotContains(t, html, "contact-role")
	})

	t.Run("blank skills omit the section", func(t *testing.T) {
		card := r.BuildCard(models.Fields{models.FieldSkills: " , ,"}, 0)
		assert.Empty(t, card.Skills)
	})
}

func TestGalleryCappedAtSix(t *testing.T) {
	r := newTestRenderer(t)

	var photos []string
	for i := 1; i <= 8; i++ {
		photos = append(photos, fmt.Sprintf("https://p/%d.jpg", i))
	}
	card := r.BuildCard(models.Fields{
		models.FieldPhotos:   strings.Join(photos, " "),
		models.FieldKeyImage: "https://k/key.jpg",
	}, 0)

	require.Len(t, card.Gallery, GalleryLimit)
	assert.Equal(t, photos[:6], card.Gallery)

	html, err := r.RenderCard(card)
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(html, `class="gallery-item"`))
	assert.Contains(t, html, `href="https://p/1.jpg" target="_blank"`)
	assert.NotContains(t, html, "https://p/7.jpg")
}

func TestRenderEscapesFieldText(t *testing.T) {
	r := newTestRenderer(t)
	html, err := r.RenderCard(r.BuildCard(models.Fields{
		models.FieldExperienceName:  `<script>alert("x")</script>`,
		models.FieldFullDescription: "Tom & Jerry",
	}, 0))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Tom &amp; Jerry")
}

func TestRenderCardsKeepsOrder(t *testing.T) {
	r := newTestRenderer(t)
	html, err := r.RenderCards([]models.Record{
		{ID: "rec2", Fields: models.Fields{models.FieldExperienceName: "Zebra"}},
		{ID: "rec1", Fields: models.Fields{models.FieldExperienceName: "Aardvark"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(html, `class="timeline-item"`))
	assert.Less(t, strings.Index(html, "Zebra"), strings.Index(html, "Aardvark"))
}
