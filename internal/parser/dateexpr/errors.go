package dateexpr

import (
	"errors"
	"fmt"
)

// ErrUnrecognized matches every ParseError via errors.Is
var ErrUnrecognized = errors.New("dateexpr: unrecognized date expression")

// ParseError no rule resolved the text to a date within range
type ParseError struct {
	Input  string
	Reason string // причина отказа последнего совпавшего шаблона, если была
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("could not parse date '%s' (%s)", e.Input, e.Reason)
	}
	return fmt.Sprintf("could not parse date '%s'", e.Input)
}

func (e *ParseError) Unwrap() error {
	return ErrUnrecognized
}

// ExampleFormats hint appended to user-facing messages
const ExampleFormats = "'tomorrow', '7/31/2025', 'July 28th', 'this Thursday', or 'YYYY-MM-DD'"
