package reschedule_event

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/book_meeting"
)

// CalendarClient интерфейс клиента календаря
type CalendarClient interface {
	ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, id int64) error
}

// Booker бронирование новой встречи
type Booker interface {
	Execute(ctx context.Context, req *book_meeting.Request) (*book_meeting.Response, error)
}

// AttemptRecorder журнал попыток переноса
type AttemptRecorder interface {
	Create(ctx context.Context, attempt *domain.RescheduleAttempt) error
	UpdateState(ctx context.Context, attempt *domain.RescheduleAttempt) error
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

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
