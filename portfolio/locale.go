package portfolio

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

// Locale formats dates the way a viewer's language writes them
type Locale struct {
	Tag      language.Tag
	months   [12]string
	dayFirst bool
	yearSep  string
}

var locales = []Locale{
	{
		Tag:     language.AmericanEnglish,
		months:  [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		yearSep: ", ",
	},
	{
		Tag:      language.Spanish,
		months:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		dayFirst: true,
		yearSep:  " ",
	},
	{
		Tag:      language.French,
		months:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		dayFirst: true,
		yearSep:  " ",
	},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag
	}
	return language.NewMatcher(tags)
}()

// DefaultLocale is US English.
func DefaultLocale() Locale {
	return locales[0]
}

// MatchLocale returns the supported locale closest to the given tags.
func MatchLocale(tags ...language.Tag) Locale {
	if len(tags) == 0 {
		return DefaultLocale()
	}
	_, idx, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale()
	}
	return locales[idx]
}

// ResolveLocale picks the viewer's locale from the lang query parameter,
// then the Accept-Language header.
func ResolveLocale(r *http.Request) Locale {
	if r == nil {
		return DefaultLocale()
	}
	if lang := strings.TrimSpace(r.URL.Query().Get(LangParam)); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			return MatchLocale(tag)
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return MatchLocale(tags...)
		}
	}
	return DefaultLocale()
}

// ShortDate formats t as abbreviated month and day ("Mar 5", "5 mar").
func (l Locale) ShortDate(t time.Time) string {
	month := l.months[t.Month()-1]
	day := strconv.Itoa(t.Day())
	if l.dayFirst {
		return day + " " + month
	}
	return month + " " + day
}

// LongDate is ShortDate with the year ("Mar 5, 2024", "5 mar 2024").
func (l Locale) LongDate(t time.Time) string {
	return l.ShortDate(t) + l.yearSep + strconv.Itoa(t.Year())
}

// DateRange renders the optional start/end pair as " (start - end)" with the
// year on the end date only, " (start)" without an end, or "" without a start.
// Dates that do not parse are shown as written.
func (l Locale) DateRange(start, end string) string {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" {
		return ""
	}
	startText := start
	if t, ok := parseDate(start); ok {
		startText = l.ShortDate(t)
	}
	if end == "" {
		return " (" + startText + ")"
	}
	endText := end
	if t, ok := parseDate(end); ok {
		endText = l.LongDate(t)
	}
	return " (" + startText + " - " + endText + ")"
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"1/2/2006",
}

// parseDate reads a calendar date. Date-only values are not shifted by
// time zone.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
