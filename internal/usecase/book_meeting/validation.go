package book_meeting

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.EventTypeID <= 0 {
		return fmt.Errorf("%w: eventTypeID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DateText) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TimeText) == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.AttendeeEmail) == "" {
		return fmt.Errorf("%w: attendee email is required", ErrInvalidInput)
	}

	return nil
}

// attendeeName имя участника, по умолчанию локальная часть email
func attendeeName(req *Request) string {
	if name := strings.TrimSpace(req.AttendeeName); name != "" {
		return name
	}
	local, _, _ := strings.Cut(req.AttendeeEmail, "@")
	return local
}
