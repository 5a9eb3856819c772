package portfolio

import (
	"context"
	"log"
	"strings"

	"portfolio-server-go/models"
	"portfolio-server-go/view"
)

// DefaultTimelineSelector is the container cards are written into.
const DefaultTimelineSelector = ".timeline"

// ItemSelector matches the rendered cards.
const ItemSelector = ".timeline-item"

// Loader loads one student's experiences and writes them into a page
type Loader struct {
	Student string

	// Source is a ProxyClient in production; the loader never reads the
	// upstream API directly.
	Source   ExperienceSource
	Page     view.Page
	Renderer *Renderer
}

// NewLoader creates a Loader for student
func NewLoader(student string, source ExperienceSource, page view.Page, renderer *Renderer) *Loader {
	return &Loader{
		Student:  student,
		Source:   source,
		Page:     page,
		Renderer: renderer,
	}
}

// LoadExperiences fetches the student's records. Failures are logged and
// shown on the page; the result is then an empty list, never an error.
func (l *Loader) LoadExperiences(ctx context.Context) []models.Record {
	records, err := l.Source.FetchRecords(ctx, strings.ToLower(l.Student))
	if err != nil {
		log.Printf("Error loading experiences for %s: %v", l.Student, err)
		l.ShowError()
		return []models.Record{}
	}
	return records
}

// RenderToTimeline writes the cards for records into the container matching
// selector (DefaultTimelineSelector when empty). A missing container is a
// no-op; no records writes the empty placeholder.
func (l *Loader) RenderToTimeline(records []models.Record, selector string) {
	if selector == "" {
		selector = DefaultTimelineSelector
	}

	if len(records) == 0 {
		l.Page.SetHTML(selector, EmptyPlaceholder)
		return
	}

	html, err := l.Renderer.RenderCards(records)
	if err != nil {
		log.Printf("Error rendering timeline for %s: %v", l.Student, err)
		l.Page.SetHTML(selector, ErrorPlaceholder)
		return
	}
	if !l.Page.SetHTML(selector, html) {
		return
	}
	l.Page.Reveal(ItemSelector)
}

// UpdateStats computes the aggregate stats and writes them into whichever
// stat elements the page has.
func (l *Loader) UpdateStats(records []models.Record) models.Stats {
	stats := ComputeStats(records)
	for id, text := range StatTexts(stats) {
		l.Page.SetText(id, text)
	}
	return stats
}

// ShowError replaces the timeline with the error placeholder.
func (l *Loader) ShowError() {
	l.Page.SetHTML(DefaultTimelineSelector, ErrorPlaceholder)
}

// Init loads, renders and updates the stats, in that order, and returns the
// loaded records. A failed load renders as an empty timeline.
func (l *Loader) Init(ctx context.Context) []models.Record {
	log.Printf("Loading experiences for %s...", l.Student)
	records := l.LoadExperiences(ctx)
	log.Printf("Loaded %d experiences for %s", len(records), l.Student)

	l.RenderToTimeline(records, DefaultTimelineSelector)
	l.UpdateStats(records)
	return records
}
