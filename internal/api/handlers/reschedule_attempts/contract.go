package reschedule_attempts

import (
	"context"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

type AttemptJournal interface {
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.RescheduleAttempt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
