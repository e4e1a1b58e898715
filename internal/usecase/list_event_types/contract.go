package list_event_types

import (
	"context"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// CalendarClient интерфейс клиента календаря
type CalendarClient interface {
	ListEventTypes(ctx context.Context) ([]domain.EventType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
