package book_meeting

import "github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"

// BookMeetingRequest HTTP request model
type BookMeetingRequest struct {
	EventTypeID   int64  `json:"eventTypeId" validate:"required,gt=0"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required"`
	AttendeeName  string `json:"attendeeName,omitempty" validate:"omitempty,max=200"`
	AttendeeEmail string `json:"attendeeEmail,omitempty" validate:"omitempty,email"`
	Reason        string `json:"reason,omitempty" validate:"omitempty,max=1000"`
}

func (r *BookMeetingRequest) ToServiceRequest() *models.BookMeetingRequest {
	return &models.BookMeetingRequest{
		EventTypeID:   r.EventTypeID,
		Date:          r.Date,
		Time:          r.Time,
		AttendeeName:  r.AttendeeName,
		AttendeeEmail: r.AttendeeEmail,
		Reason:        r.Reason,
	}
}
