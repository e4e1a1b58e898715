package assistant

import (
	"regexp"
	"strings"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

const monthNames = `january|february|march|april|may|june|july|august|september|october|november|december|` +
	`jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

// порядок важен: сначала самые специфичные формы
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`@\s*(\d{1,2}:\d{2}\s*[ap]m)`),
	regexp.MustCompile(`@\s*(\d{1,2}\s*[ap]m)`),
	regexp.MustCompile(`at\s*(\d{1,2}:\d{2}\s*[ap]m)`),
	regexp.MustCompile(`at\s*(\d{1,2}\s*[ap]m)`),
	regexp.MustCompile(`(\d{1,2}:\d{2}\s*[ap]m)`),
	regexp.MustCompile(`(\d{1,2}\s*[ap]m)`),
	regexp.MustCompile(`(\d{1,2}:\d{2})`),
	regexp.MustCompile(`at\s+(\d{1,2})\b`),
	regexp.MustCompile(`\b(\d{1,2})\b`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`),
	regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`),
	regexp.MustCompile(`(?:` + monthNames + `)\s+\d{1,2}(?:st|nd|rd|th)?,?\s*\d{4}`),
	regexp.MustCompile(`\d{1,2}(?:st|nd|rd|th)?\s+(?:` + monthNames + `),?\s*\d{4}`),
	regexp.MustCompile(`(?:this|next)\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
}

// extractDate первая дата в сообщении и сообщение без нее. По умолчанию завтра.
func extractDate(msg string) (string, string) {
	for _, re := range datePatterns {
		if loc := re.FindStringIndex(msg); loc != nil {
			return msg[loc[0]:loc[1]], msg[:loc[0]] + " " + msg[loc[1]:]
		}
	}

	switch {
	case strings.Contains(msg, domain.TokenTomorrow):
		return domain.TokenTomorrow, msg
	case strings.Contains(msg, domain.TokenToday):
		return domain.TokenToday, msg
	default:
		return domain.TokenTomorrow, msg
	}
}

// extractTime первый фрагмент, который парсер времени принимает
func extractTime(msg string, parser TimeParser) (string, domain.CanonicalTime, bool) {
	for _, re := range timePatterns {
		m := re.FindStringSubmatch(msg)
		if m == nil {
			continue
		}
		raw := strings.TrimSpace(m[1])
		if t, err := parser.Parse(raw); err == nil {
			return raw, t, true
		}
	}
	return "", domain.CanonicalTime{}, false
}
