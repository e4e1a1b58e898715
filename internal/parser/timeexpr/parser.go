package timeexpr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// pattern одно правило разбора. Правила проверяются строго по порядку,
// побеждает первое совпавшее.
type pattern struct {
	name    string
	re      *regexp.Regexp
	extract func(m []string) (domain.CanonicalTime, error)
}

// Все шаблоны привязаны к началу строки: "3pm tomorrow" распознается, "at 3pm" нет.
var patterns = []pattern{
	{
		name:    "hour:minute meridiem",
		re:      regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([ap]m)`),
		extract: func(m []string) (domain.CanonicalTime, error) { return withMeridiem(m[1], m[2], m[3]) },
	},
	{
		name:    "hour meridiem",
		re:      regexp.MustCompile(`^(\d{1,2})\s*([ap]m)`),
		extract: func(m []string) (domain.CanonicalTime, error) { return withMeridiem(m[1], "0", m[2]) },
	},
	{
		name:    "hour:minute",
		re:      regexp.MustCompile(`^(\d{1,2}):(\d{2})`),
		extract: func(m []string) (domain.CanonicalTime, error) { return withoutMeridiem(m[1], m[2]) },
	},
	{
		name:    "bare hour",
		re:      regexp.MustCompile(`^(\d{1,2})`),
		extract: func(m []string) (domain.CanonicalTime, error) { return withoutMeridiem(m[1], "0") },
	},
}

// Parser stateless time-of-day parser
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse see package-level Parse
func (p *Parser) Parse(text string) (domain.CanonicalTime, error) {
	return Parse(text)
}

// Parse resolves a free-text time of day ("3pm", "2:30 PM", "14:00", "9").
//
// Without a meridiem an hour above 12 is read as 24-hour. Hours 0-12 go through
// the ambiguous-hour policy: 0 is midnight, 7-11 are morning, 1-6 and 12 are
// afternoon. "9" is 9:00 AM and "3" is 3:00 PM; "7" meaning 7 PM is not
// representable without a meridiem.
func Parse(text string) (domain.CanonicalTime, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return domain.CanonicalTime{}, &ParseError{Input: text, Reason: "empty"}
	}

	var lastReason string
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		t, err := p.extract(m)
		if err != nil {
			// Не переходим к следующему шаблону: "25:00" не должно стать "2"
			lastReason = err.Error()
			break
		}
		return t, nil
	}

	return domain.CanonicalTime{}, &ParseError{Input: text, Reason: lastReason}
}

func withMeridiem(hourStr, minuteStr, meridiem string) (domain.CanonicalTime, error) {
	hour, minute, err := atoiPair(hourStr, minuteStr)
	if err != nil {
		return domain.CanonicalTime{}, err
	}
	if hour < 1 || hour > 12 {
		return domain.CanonicalTime{}, fmt.Errorf("hour %d is not valid with %s", hour, strings.ToUpper(meridiem))
	}

	switch {
	case meridiem == "am" && hour == 12:
		hour = 0
	case meridiem == "pm" && hour != 12:
		hour += 12
	}
	return domain.NewCanonicalTime(hour, minute)
}

func withoutMeridiem(hourStr, minuteStr string) (domain.CanonicalTime, error) {
	hour, minute, err := atoiPair(hourStr, minuteStr)
	if err != nil {
		return domain.CanonicalTime{}, err
	}
	if hour > 12 {
		return domain.NewCanonicalTime(hour, minute)
	}
	return domain.NewCanonicalTime(resolveAmbiguousHour(hour), minute)
}

// resolveAmbiguousHour 0 -> 0, 7..11 -> AM, 1..6 и 12 -> PM
func resolveAmbiguousHour(hour int) int {
	switch {
	case hour == 0:
		return 0
	case hour >= 7 && hour <= 11:
		return hour
	case hour == 12:
		return 12
	default:
		return hour + 12
	}
}

func atoiPair(hourStr, minuteStr string) (int, int, error) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour %q", hourStr)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute %q", minuteStr)
	}
	return hour, minute, nil
}
