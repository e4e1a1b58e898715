package book_meeting

import (
	"context"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/integrations/calcom"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/check_availability"
)

// AvailabilityChecker повторная проверка слота перед бронированием
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *check_availability.Request) (*check_availability.Response, error)
}

// CalendarClient интерфейс клиента календаря
type CalendarClient interface {
	GetEventType(ctx context.Context, id int64) (*domain.EventType, error)
	CreateBooking(ctx context.Context, req *calcom.CreateBookingRequest) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
