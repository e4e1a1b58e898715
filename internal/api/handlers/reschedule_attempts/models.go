package reschedule_attempts

import (
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// AttemptResponse HTTP response model
type AttemptResponse struct {
	ID            string  `json:"id"`
	BookingID     int64   `json:"bookingId"`
	BookingTitle  string  `json:"bookingTitle"`
	EventTypeID   int64   `json:"eventTypeId"`
	OldStart      string  `json:"oldStart"`
	NewDate       string  `json:"newDate"`
	NewTime       string  `json:"newTime"`
	NewBookingID  *int64  `json:"newBookingId,omitempty"`
	State         string  `json:"state"`
	FailureReason *string `json:"failureReason,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// AttemptsResponse HTTP response model
type AttemptsResponse struct {
	Attempts []AttemptResponse `json:"attempts"`
}

func toAttemptResponse(a domain.RescheduleAttempt) AttemptResponse {
	resp := AttemptResponse{
		ID:           a.ID.String(),
		BookingID:    a.BookingID,
		BookingTitle: a.BookingTitle,
		EventTypeID:  a.EventTypeID,
		OldStart:     a.OldStart.UTC().Format(time.RFC3339),
		NewDate:      a.NewDate,
		NewTime:      a.NewTime.Clock(),
		NewBookingID: a.NewBookingID,
		State:        string(a.State),
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if a.FailureReason != "" {
		reason := a.FailureReason
		resp.FailureReason = &reason
	}
	return resp
}
