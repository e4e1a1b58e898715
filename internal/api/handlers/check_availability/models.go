package check_availability

import "github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	EventTypeID int64   `json:"eventTypeId" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"`           // "tomorrow", "7/31/2025", "this friday"
	Time        *string `json:"time,omitempty" validate:"omitempty"` // без времени вернется список слотов
}

func (r *CheckAvailabilityRequest) ToServiceRequest() *models.CheckAvailabilityRequest {
	return &models.CheckAvailabilityRequest{
		EventTypeID: r.EventTypeID,
		Date:        r.Date,
		Time:        r.Time,
	}
}
