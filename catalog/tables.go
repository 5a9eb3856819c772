package catalog

import (
	"sort"
	"strings"

	"portfolio-server-go/models"
)

// StudentViewMap resolves a student identifier to an Airtable view name.
// It is immutable once built.
type StudentViewMap struct {
	views map[string]string
}

// NewStudentViewMap indexes students by normalized ID. Later duplicates win.
func NewStudentViewMap(students []models.Student) StudentViewMap {
	views := make(map[string]string, len(students))
	for _, s := range students {
		views[NormalizeStudent(s.ID)] = s.View
	}
	return StudentViewMap{views: views}
}

// Lookup returns the view for student, matching case-insensitively.
func (m StudentViewMap) Lookup(student string) (string, bool) {
	view, ok := m.views[strings.ToLower(student)]
	return view, ok
}

// Students returns the known student IDs in sorted order.
func (m StudentViewMap) Students() []string {
	ids := make([]string, 0, len(m.views))
	for id := range m.views {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len is the number of students in the map.
func (m StudentViewMap) Len() int {
	return len(m.views)
}

// CategoryTable maps category labels to their image, icon and CSS class
type CategoryTable struct {
	images        map[string]string
	icons         map[string]string
	classes       map[string]string
	defaultImage  string
	fallbackIcon  string
	fallbackClass string
}

// NewCategoryTable builds a table from entries. Lookups are exact on label.
func NewCategoryTable(entries []CategoryEntry, defaultImage, fallbackIcon, fallbackClass string) *CategoryTable {
	t := &CategoryTable{
		images:        make(map[string]string),
		icons:         make(map[string]string),
		classes:       make(map[string]string),
		defaultImage:  defaultImage,
		fallbackIcon:  fallbackIcon,
		fallbackClass: fallbackClass,
	}
	for _, e := range entries {
		if e.Image != "" {
			t.images[e.Label] = e.Image
		}
		if e.Icon != "" {
			t.icons[e.Label] = e.Icon
		}
		if e.Class != "" {
			t.classes[e.Label] = strings.ToLower(e.Class)
		}
	}
	return t
}

// Image returns the category's default illustration, or the generic one.
func (t *CategoryTable) Image(category string) string {
	if img, ok := t.images[category]; ok {
		return img
	}
	return t.defaultImage
}

// Icon returns the category's badge icon, or the fallback icon.
func (t *CategoryTable) Icon(category string) string {
	if icon, ok := t.icons[category]; ok {
		return icon
	}
	return t.fallbackIcon
}

// Class returns the CSS grouping class for the category, or the fallback.
func (t *CategoryTable) Class(category string) string {
	if class, ok := t.classes[category]; ok {
		return class
	}
	return strings.ToLower(t.fallbackClass)
}

// StaticRoster serves a fixed list of students
type StaticRoster []models.Student

// GetAllStudents returns the roster sorted by ID.
func (r StaticRoster) GetAllStudents() ([]models.Student, error) {
	out := append([]models.Student(nil), r...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
