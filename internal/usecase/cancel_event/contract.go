package cancel_event

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// CalendarClient интерфейс клиента календаря
type CalendarClient interface {
	ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, id int64) error
}

// DateParser разбор даты в часовом поясе пользователя
type DateParser interface {
	Parse(text string) (domain.CanonicalDate, error)
	Location() *time.Location
}

// TimeParser разбор времени суток
type TimeParser interface {
	Parse(text string) (domain.CanonicalTime, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
