package reschedule

import (
	"context"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// NopRepository используется, когда журнал выключен в конфигурации
type NopRepository struct{}

func (NopRepository) Create(context.Context, *domain.RescheduleAttempt) error {
	return nil
}

func (NopRepository) UpdateState(context.Context, *domain.RescheduleAttempt) error {
	return nil
}

func (NopRepository) ListByBooking(context.Context, int64) ([]domain.RescheduleAttempt, error) {
	return []domain.RescheduleAttempt{}, nil
}
