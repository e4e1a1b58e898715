package cancel_event

import (
	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"
)

// CancelEventRequest HTTP request model
type CancelEventRequest struct {
	Time         *string `json:"time,omitempty"`
	Date         *string `json:"date,omitempty"` // по умолчанию "today", "this week" требует подтверждения
	Confirmation string  `json:"confirmation,omitempty" validate:"omitempty,oneof=confirmed confirm abandoned abandon awaiting_confirmation"`
}

func (r *CancelEventRequest) ToServiceRequest() *models.CancelEventRequest {
	return &models.CancelEventRequest{
		Time:         r.Time,
		Date:         r.Date,
		Confirmation: domain.ParseBulkConfirmation(r.Confirmation),
	}
}
