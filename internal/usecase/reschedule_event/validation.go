package reschedule_event

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if strings.TrimSpace(req.OldTimeText) == "" {
		return fmt.Errorf("%w: old time is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.NewTimeText) == "" {
		return fmt.Errorf("%w: new time is required", ErrInvalidInput)
	}

	return nil
}
