package dateexpr

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// Clock источник текущего времени (для тестов)
type Clock interface {
	Now() time.Time
}

// RealClock системные часы
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// Parser resolves free-text dates relative to the current day in loc
type Parser struct {
	loc   *time.Location
	clock Clock
}

// NewParser creates a parser for the user's timezone. nil clock means system time.
func NewParser(loc *time.Location, clock Clock) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &Parser{loc: loc, clock: clock}
}

// Location timezone the parser resolves dates in
func (p *Parser) Location() *time.Location {
	return p.loc
}

// Today local midnight of the current day
func (p *Parser) Today() time.Time {
	return domain.StartOfDay(p.clock.Now().In(p.loc))
}

// Parse resolves text relative to today
func (p *Parser) Parse(text string) (domain.CanonicalDate, error) {
	return p.ParseFrom(text, p.clock.Now())
}

// ParseFrom resolves text relative to the calendar day of anchor (taken in the parser's timezone).
//
// Order: exact keywords, weekday phrases, week phrases, absolute formats, strict YYYY-MM-DD.
// Any absolute candidate more than five years away from the anchor is skipped.
func (p *Parser) ParseFrom(text string, anchor time.Time) (domain.CanonicalDate, error) {
	today := domain.StartOfDay(anchor.In(p.loc))
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return domain.CanonicalDate{}, &ParseError{Input: text, Reason: "empty"}
	}

	if d, ok := resolveKeyword(s, today); ok {
		return d, nil
	}
	if d, ok := resolveWeekday(s, today); ok {
		return d, nil
	}
	if d, ok := resolveWeek(s, today); ok {
		return d, nil
	}

	var reason string
	for _, pat := range absolutePatterns {
		m := pat.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		date, err := pat.extract(m, today)
		if err != nil {
			reason = err.Error()
			continue
		}
		if !withinRange(date, today) {
			reason = fmt.Sprintf("%s is more than %d days away", date.Format(domain.DateFormat), domain.MaxDateDistanceDays)
			continue
		}
		return isoDate(date), nil
	}

	if date, err := time.ParseInLocation(domain.DateFormat, s, p.loc); err == nil {
		if withinRange(date, today) {
			return isoDate(date), nil
		}
		reason = fmt.Sprintf("%s is more than %d days away", s, domain.MaxDateDistanceDays)
	}

	return domain.CanonicalDate{}, &ParseError{Input: text, Reason: reason}
}

func resolveKeyword(s string, today time.Time) (domain.CanonicalDate, bool) {
	switch {
	case s == domain.TokenToday:
		return domain.CanonicalDate{Date: today, Token: domain.TokenToday}, true
	case s == domain.TokenTomorrow:
		return domain.CanonicalDate{Date: today.AddDate(0, 0, 1), Token: domain.TokenTomorrow}, true
	case strings.Contains(s, "day after tomorrow"):
		return isoDate(today.AddDate(0, 0, 2)), true
	case s == "yesterday":
		return isoDate(today.AddDate(0, 0, -1)), true
	}
	return domain.CanonicalDate{}, false
}

// resolveWeekday "this W" ближайший будущий W (не сегодня),
// "next W" всегда на следующей неделе (через 7..13 дней),
// "last W" ближайший прошедший W (не сегодня).
func resolveWeekday(s string, today time.Time) (domain.CanonicalDate, bool) {
	current := mondayIndex(today)

	for target, name := range weekdays {
		switch {
		case strings.Contains(s, "this "+name):
			ahead := target - current
			if ahead <= 0 {
				ahead += 7
			}
			return isoDate(today.AddDate(0, 0, ahead)), true

		case strings.Contains(s, "next "+name):
			ahead := target - current + 7
			if target < current {
				ahead += 7
			}
			return isoDate(today.AddDate(0, 0, ahead)), true

		case strings.Contains(s, "last "+name):
			back := current - target
			if back <= 0 {
				back += 7
			}
			return isoDate(today.AddDate(0, 0, -back)), true
		}
	}
	return domain.CanonicalDate{}, false
}

func resolveWeek(s string, today time.Time) (domain.CanonicalDate, bool) {
	switch {
	case strings.Contains(s, "next week"):
		return isoDate(today.AddDate(0, 0, 7)), true
	case strings.Contains(s, domain.TokenThisWeek):
		return domain.CanonicalDate{Date: today, Token: domain.TokenThisWeek}, true
	}
	return domain.CanonicalDate{}, false
}

// EndOfWeek last day (Sunday) of the ISO week containing day
func EndOfWeek(day time.Time) time.Time {
	return domain.StartOfDay(day).AddDate(0, 0, 6-mondayIndex(day))
}

// mondayIndex понедельник = 0 ... воскресенье = 6
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func withinRange(date, today time.Time) bool {
	diff := domain.DaysBetween(today, date)
	if diff < 0 {
		diff = -diff
	}
	return diff <= domain.MaxDateDistanceDays
}

func isoDate(date time.Time) domain.CanonicalDate {
	return domain.CanonicalDate{Date: date, Token: date.Format(domain.DateFormat)}
}
