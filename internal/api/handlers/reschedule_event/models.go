package reschedule_event

import "github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"

// RescheduleEventRequest HTTP request model
type RescheduleEventRequest struct {
	OldTime string  `json:"oldTime" validate:"required"`
	NewTime string  `json:"newTime" validate:"required"`
	Date    string  `json:"date,omitempty"` // по умолчанию "tomorrow"
	NewDate *string `json:"newDate,omitempty"`
}

func (r *RescheduleEventRequest) ToServiceRequest() *models.RescheduleEventRequest {
	return &models.RescheduleEventRequest{
		OldTime: r.OldTime,
		NewTime: r.NewTime,
		Date:    r.Date,
		NewDate: r.NewDate,
	}
}
