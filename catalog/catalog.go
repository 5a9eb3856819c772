// Package catalog holds the static lookup tables the portfolio is built
// from: which Airtable view belongs to which student, and how each
// experience category is illustrated.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"portfolio-server-go/models"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the parsed catalog file
type Catalog struct {
	Students      []StudentEntry  `yaml:"students"`
	DefaultImage  string          `yaml:"default_image"`
	FallbackIcon  string          `yaml:"fallback_icon"`
	FallbackClass string          `yaml:"fallback_class"`
	Categories    []CategoryEntry `yaml:"categories"`
}

// StudentEntry maps one student to the view holding their experiences
type StudentEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	View string `yaml:"view"`
}

// CategoryEntry describes how one category is presented. Any attribute may
// be left empty, in which case the table's fallback applies.
type CategoryEntry struct {
	Label string `yaml:"label"`
	Image string `yaml:"image"`
	Icon  string `yaml:"icon"`
	Class string `yaml:"class"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if c.DefaultImage == "" {
		return nil, errors.New("catalog: default_image is required")
	}
	if c.FallbackIcon == "" {
		c.FallbackIcon = "📖"
	}
	if c.FallbackClass == "" {
		c.FallbackClass = "other"
	}
	for i, s := range c.Students {
		if NormalizeStudent(s.ID) == "" || s.View == "" {
			return nil, fmt.Errorf("catalog: student %d needs id and view", i)
		}
	}
	return &c, nil
}

// Roster returns the catalog's students as roster entries.
func (c *Catalog) Roster() []models.Student {
	out := make([]models.Student, 0, len(c.Students))
	for _, s := range c.Students {
		name := s.Name
		if name == "" {
			name = s.ID
		}
		out = append(out, models.Student{ID: NormalizeStudent(s.ID), Name: name, View: s.View})
	}
	return out
}

// Views builds the student to view map from the catalog's students.
func (c *Catalog) Views() StudentViewMap {
	return NewStudentViewMap(c.Roster())
}

// CategoryTable builds the presentation table from the catalog.
func (c *Catalog) CategoryTable() *CategoryTable {
	return NewCategoryTable(c.Categories, c.DefaultImage, c.FallbackIcon, c.FallbackClass)
}

// NormalizeStudent trims and lowercases a student identifier.
func NormalizeStudent(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
