package portfolio

import (
	"bytes"
	"fmt"
	"html/template"

	"portfolio-server-go/catalog"
	"portfolio-server-go/models"
)

// Placeholders written into the timeline instead of cards.
const (
	EmptyPlaceholder = `<div class="timeline-empty"><h3>No experiences found</h3><p>Check your Airtable view filter.</p></div>`
	ErrorPlaceholder = `<div class="timeline-error"><h3>⚠️ Unable to load experiences</h3><p>Please check your configuration.</p></div>`
)

var cardTemplate = template.Must(template.New("card").Parse(`
<div class="timeline-item" data-category="{{.CategoryClass}}">
  <div class="timeline-marker"></div>
  <div class="timeline-content">
    <div class="experience-card-premium">
      <div class="exp-image-container">
        <img src="{{.ImageURL}}" alt="{{.Title}}" loading="lazy">
        <div class="exp-category-badge">{{.CategoryIcon}} {{.Category}}</div>
        <div class="exp-hours-badge">⏱️ {{.Hours}} hours</div>
        <div class="exp-overlay"><h3 class="exp-title-overlay">{{.Title}}</h3></div>
      </div>
      <div class="exp-content">
        {{- if .Meta}}
        <div class="exp-meta-info">
          {{- range .Meta}}
          <div class="meta-item"><span class="meta-icon">{{.Icon}}</span><span>{{.Text}}</span></div>
          {{- end}}
        </div>
        {{- end}}
        {{- if .Description}}
        <p class="exp-description">{{.Description}}</p>
        {{- end}}
        {{- if .Skills}}
        <div class="exp-skills">
          <h4 class="exp-skills-title">Skills Developed</h4>
          <div class="skills-grid">
            {{- range .Skills}}<span class="skill-tag">{{.}}</span>{{end -}}
          </div>
        </div>
        {{- end}}
        {{- range .Learning}}
        <div class="exp-learning">
          <h4 class="exp-learning-title">{{.Title}}</h4>
          <p class="exp-learning-text">{{.Text}}</p>
        </div>
        {{- end}}
        {{- if .Achievements}}
        <div class="exp-achievements">
          <h4 class="exp-achievements-title"><span>🏆</span> Key Achievements</h4>
          <p class="exp-achievements-text">{{.Achievements}}</p>
        </div>
        {{- end}}
        {{- with .Contact}}
        <div class="exp-contact">
          <div class="contact-info">
            <span class="contact-icon">👤</span>
            <div>
              <div class="contact-name">{{.Name}}</div>
              {{- if .Role}}
              <div class="contact-role">{{.Role}}</div>
              {{- end}}
            </div>
          </div>
        </div>
        {{- end}}
      </div>
      {{- if .Gallery}}
      <div class="exp-gallery">
        <div class="gallery-grid">
          {{- range .Gallery}}
          <a class="gallery-item" href="{{.}}" target="_blank" rel="noopener"><img src="{{.}}" alt="Experience photo" loading="lazy"></a>
          {{- end}}
        </div>
      </div>
      {{- end}}
    </div>
  </div>
</div>`))

// Renderer turns records into timeline markup
type Renderer struct {
	Builder
}

// NewRenderer creates a Renderer for the given categories and locale
func NewRenderer(categories *catalog.CategoryTable, locale Locale) *Renderer {
	return &Renderer{Builder: Builder{Categories: categories, Locale: locale}}
}

// RenderCard writes one card's markup.
func (r *Renderer) RenderCard(card Card) (string, error) {
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, card); err != nil {
		return "", fmt.Errorf("render card %d: %w", card.Index, err)
	}
	return buf.String(), nil
}

// RenderCards renders records in the order given and concatenates them.
func (r *Renderer) RenderCards(records []models.Record) (string, error) {
	var buf bytes.Buffer
	for i, record := range records {
		html, err := r.RenderCard(r.BuildCard(record.Fields, i))
		if err != nil {
			return "", err
		}
		buf.WriteString(html)
	}
	return buf.String(), nil
}
