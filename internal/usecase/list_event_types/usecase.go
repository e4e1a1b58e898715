package list_event_types

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// UseCase use case получения типов встреч
type UseCase struct {
	calendar CalendarClient
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarClient, logger Logger) *UseCase {
	return &UseCase{
		calendar: calendar,
		logger:   logger,
	}
}

// Execute возвращает типы встреч в порядке календаря
func (uc *UseCase) Execute(ctx context.Context) ([]domain.EventType, error) {
	eventTypes, err := uc.calendar.ListEventTypes(ctx)
	if err != nil {
		uc.logger.Error("ListEventTypes: failed to list event types: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrCalendar, err)
	}

	uc.logger.Info("ListEventTypes: %d event types", len(eventTypes))
	return eventTypes, nil
}
