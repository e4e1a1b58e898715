package dateexpr

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// absolutePattern абсолютная запись даты. Ищется в любом месте текста.
type absolutePattern struct {
	name    string
	re      *regexp.Regexp
	extract func(m []string, anchor time.Time) (time.Time, error)
}

const monthNames = `january|february|march|april|may|june|july|august|september|october|november|december|` +
	`jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// weekdays индекс совпадает с номером дня недели, понедельник = 0
var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var absolutePatterns = []absolutePattern{
	{
		name: "M/D/Y",
		re:   regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`),
		extract: func(m []string, anchor time.Time) (time.Time, error) {
			year := atoi(m[3])
			if len(m[3]) <= 2 {
				year = expandTwoDigitYear(year)
			}
			return buildDate(year, atoi(m[1]), atoi(m[2]), anchor.Location())
		},
	},
	{
		name: "Y-M-D",
		re:   regexp.MustCompile(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`),
		extract: func(m []string, anchor time.Time) (time.Time, error) {
			return buildDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), anchor.Location())
		},
	},
	{
		name: "Month D, Y",
		re:   regexp.MustCompile(`\b(` + monthNames + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b,?\s*(\d{4})?`),
		extract: func(m []string, anchor time.Time) (time.Time, error) {
			return buildDate(yearOrAnchor(m[3], anchor), int(months[m[1]]), atoi(m[2]), anchor.Location())
		},
	},
	{
		name: "D Month, Y",
		re:   regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)\b\.?,?\s*(\d{4})?`),
		extract: func(m []string, anchor time.Time) (time.Time, error) {
			return buildDate(yearOrAnchor(m[3], anchor), int(months[m[2]]), atoi(m[1]), anchor.Location())
		},
	},
	{
		name: "YYYYMMDD",
		re:   regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`),
		extract: func(m []string, anchor time.Time) (time.Time, error) {
			return buildDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), anchor.Location())
		},
	},
}

// expandTwoDigitYear 00-49 -> 2000-е, 50-99 -> 1900-е
func expandTwoDigitYear(year int) int {
	if year < 50 {
		return 2000 + year
	}
	return 1900 + year
}

func yearOrAnchor(s string, anchor time.Time) int {
	if s == "" {
		return anchor.Year()
	}
	return atoi(s)
}

// buildDate проверяет диапазоны и существование даты в календаре (31 апреля, 29 февраля)
func buildDate(year, month, day int, loc *time.Location) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month: %d", month)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid day: %d", day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date: %d/%d/%d", month, day, year)
	}
	return t, nil
}

// atoi вход уже проверен регулярным выражением
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
