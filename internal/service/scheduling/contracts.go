package scheduling

import (
	"context"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/book_meeting"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/cancel_event"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/check_availability"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/list_events"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/reschedule_event"
)

// CheckAvailabilityUseCase интерфейс use case проверки доступности
type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *check_availability.Request) (*check_availability.Response, error)
}

// BookMeetingUseCase интерфейс use case бронирования
type BookMeetingUseCase interface {
	Execute(ctx context.Context, req *book_meeting.Request) (*book_meeting.Response, error)
}

// CancelEventUseCase интерфейс use case отмены
type CancelEventUseCase interface {
	Execute(ctx context.Context, req *cancel_event.Request) (*cancel_event.Response, error)
}

// RescheduleEventUseCase интерфейс use case переноса
type RescheduleEventUseCase interface {
	Execute(ctx context.Context, req *reschedule_event.Request) (*reschedule_event.Response, error)
}

// ListEventsUseCase интерфейс use case списка встреч
type ListEventsUseCase interface {
	Execute(ctx context.Context) (*list_events.Response, error)
}

// ListEventTypesUseCase интерфейс use case списка типов встреч
type ListEventTypesUseCase interface {
	Execute(ctx context.Context) ([]domain.EventType, error)
}

// MetricsRecorder учет нераспознанных выражений
type MetricsRecorder interface {
	IncParseFailure(parser string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
