package timeexpr

import (
	"errors"
	"fmt"
)

// ErrUnrecognized matches every ParseError via errors.Is
var ErrUnrecognized = errors.New("timeexpr: unrecognized time expression")

// ParseError time expression could not be resolved.
// Passthrough returns the original text, for callers that still forward
// the raw phrase to the user or to the calendar tooling.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("could not understand time '%s': %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("could not understand time '%s'", e.Input)
}

func (e *ParseError) Unwrap() error {
	return ErrUnrecognized
}

// Passthrough original text as received
func (e *ParseError) Passthrough() string {
	return e.Input
}

// ExampleFormats hint appended to user-facing messages
const ExampleFormats = "'2pm', '2:30 PM', or '14:00'"
