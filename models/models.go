package models

import (
	"strconv"
	"strings"
)

// Student represents a roster entry
type Student struct {
	ID   string `json:"id"`   // Normalized student ID (lowercase, e.g. "fiona")
	Name string `json:"name"` // Display name
	View string `json:"-"`    // Airtable view the student's experiences live in
}

// Record is one row of the Experiences table as returned by Airtable
type Record struct {
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime,omitempty"`
	Fields      Fields `json:"fields"`
}

// RecordList is the Airtable list response
type RecordList struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// Stats holds the aggregate numbers shown above the timeline
type Stats struct {
	TotalExperiences int     `json:"totalExperiences"`
	TotalHours       float64 `json:"totalHours"`
	TotalSkills      int     `json:"totalSkills"`
}

// Field names consumed from the Experiences table.
const (
	FieldExperienceName        = "Experience_Name"
	FieldCategoryPrimary       = "Category_Primary"
	FieldTotalHours            = "Total_Hours"
	FieldTermSeason            = "Term_Season"
	FieldAcademicYear          = "Academic_Year"
	FieldStartDate             = "Start_Date"
	FieldEndDate               = "End_Date"
	FieldOrganizationName      = "Organization_Name"
	FieldLocationVenue         = "Location_Venue"
	FieldCity                  = "City"
	FieldGrade                 = "Grade"
	FieldAge                   = "Age"
	FieldFullDescription       = "Full_Description"
	FieldSkills                = "Skills"
	FieldWhatDidYouLearn       = "What_Did_You_Learn"
	FieldSurprise              = "Surprise"
	FieldChallenges            = "Challenges"
	FieldKeyAchievements       = "Key_Achievements"
	FieldKeyTakeAways          = "Key_Take_Aways"
	FieldInstructorNames       = "Instructor_Names"
	FieldMainContact           = "Main_Contact"
	FieldInstructorCredentials = "Instructor_Credentials"
	FieldTheirRoleTitle        = "Their_Role_Title"
	FieldPhotos                = "Photos"
	FieldKeyImage              = "Key_Image"
)

// ConsumedFields lists every field the timeline reads, in display order.
var ConsumedFields = []string{
	FieldExperienceName, FieldCategoryPrimary, FieldTotalHours,
	FieldTermSeason, FieldAcademicYear, FieldStartDate, FieldEndDate,
	FieldOrganizationName, FieldLocationVenue, FieldCity, FieldGrade, FieldAge,
	FieldFullDescription, FieldSkills, FieldWhatDidYouLearn, FieldSurprise,
	FieldChallenges, FieldKeyAchievements, FieldKeyTakeAways,
	FieldInstructorNames, FieldMainContact, FieldInstructorCredentials,
	FieldTheirRoleTitle, FieldPhotos, FieldKeyImage,
}

// Fields holds a record's cell values keyed by field name. Airtable returns
// strings, numbers, booleans, lists and attachment objects, so values stay
// untyped and are read through the accessors below.
type Fields map[string]any

// Text returns the field rendered as display text. Missing fields are "".
// Attachment lists are flattened to their URLs separated by spaces, other
// lists are joined with ", ".
func (f Fields) Text(name string) string {
	return textOf(f[name])
}

// Has reports whether the field holds a non-blank value. Zero numbers and
// false count as blank.
func (f Fields) Has(name string) bool {
	switch v := f[name].(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case bool:
		return v
	case []any:
		return strings.TrimSpace(textOf(v)) != ""
	default:
		return textOf(v) != ""
	}
}

// Number returns the field as a number, 0 when missing or not numeric.
func (f Fields) Number(name string) float64 {
	switch v := f[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// FirstOf returns the text of the first non-blank field among names.
func (f Fields) FirstOf(names ...string) string {
	for _, name := range names {
		if f.Has(name) {
			return f.Text(name)
		}
	}
	return ""
}

// FormatNumber renders a number without a trailing ".0" for whole values.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return FormatNumber(t)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any:
		if u, ok := t["url"].(string); ok {
			return u
		}
		return ""
	case []any:
		// multi-select values read like a comma-separated cell; attachment
		// URLs must stay whitespace-separated for URL extraction
		sep := ", "
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if _, ok := item.(map[string]any); ok {
				sep = " "
			}
			if s := textOf(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, sep)
	default:
		return ""
	}
}
