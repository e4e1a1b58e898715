package check_availability

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

	return nil
}
