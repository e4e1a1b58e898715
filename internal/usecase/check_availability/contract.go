package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// CalendarClient интерфейс клиента календаря
type CalendarClient interface {
	GetSlots(ctx context.Context, eventTypeID int64, start, end time.Time, timeZone string) ([]time.Time, error)
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
