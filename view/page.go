// Package view isolates the page the portfolio is written into, so the
// loader can be driven against an in-memory document.
package view

import "sync"

// Page is the subset of a document the portfolio loader mutates
type Page interface {
	// SetHTML replaces the inner markup of the element matching selector.
	// It reports false, changing nothing, when no element matches.
	SetHTML(selector, html string) bool
	// SetText sets the text of the element with the given id.
	SetText(id, text string) bool
	// Reveal marks the elements matching selector for scroll-reveal.
	Reveal(selector string)
}

// Document is an in-memory Page with a fixed set of elements
type Document struct {
	mu       sync.Mutex
	html     map[string]string
	text     map[string]string
	revealed []string
}

// NewDocument creates a document containing the given containers (by
// selector) and text elements (by id).
func NewDocument(containers []string, textIDs []string) *Document {
	d := &Document{
		html: make(map[string]string, len(containers)),
		text: make(map[string]string, len(textIDs)),
	}
	for _, c := range containers {
		d.html[c] = ""
	}
	for _, id := range textIDs {
		d.text[id] = ""
	}
	return d
}

// SetHTML replaces a container's markup; unknown selectors report false.
func (d *Document) SetHTML(selector, html string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.html[selector]; !ok {
		return false
	}
	d.html[selector] = html
	return true
}

// SetText sets a text element; unknown ids report false.
func (d *Document) SetText(id, text string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.text[id]; !ok {
		return false
	}
	d.text[id] = text
	return true
}

// Reveal records selector for the scroll-reveal script.
func (d *Document) Reveal(selector string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revealed = append(d.revealed, selector)
}

// HTML returns the markup of a container and whether it exists.
func (d *Document) HTML(selector string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	html, ok := d.html[selector]
	return html, ok
}

// Text returns the text of an element and whether it exists.
func (d *Document) Text(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	text, ok := d.text[id]
	return text, ok
}

// Revealed lists the selectors passed to Reveal, in call order.
func (d *Document) Revealed() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.revealed...)
}
