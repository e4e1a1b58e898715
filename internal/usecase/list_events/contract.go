package list_events

import (
	"context"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// CalendarClient интерфейс клиента календаря
type CalendarClient interface {
	ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
