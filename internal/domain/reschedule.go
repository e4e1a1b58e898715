package domain

import (
	"time"

	"github.com/google/uuid"
)

// RescheduleState phase of a reschedule attempt
type RescheduleState string

const (
	RescheduleLocated           RescheduleState = "located"
	RescheduleOriginalCancelled RescheduleState = "original_cancelled"
	RescheduleCompleted         RescheduleState = "completed"
	RescheduleReplacementFailed RescheduleState = "replacement_failed"
)

// IsTerminal returns true once no further transition is possible
func (s RescheduleState) IsTerminal() bool {
	return s == RescheduleCompleted || s == RescheduleReplacementFailed
}

// RescheduleAttempt two-phase cancel-then-rebook of a single booking
type RescheduleAttempt struct {
	ID            uuid.UUID
	BookingID     int64
	BookingTitle  string
	EventTypeID   int64
	OldStart      time.Time // UTC
	NewDate       string    // токен новой даты
	NewTime       CanonicalTime
	NewBookingID  *int64
	State         RescheduleState
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRescheduleAttempt creates an attempt in the located state
func NewRescheduleAttempt(booking Booking, newDate string, newTime CanonicalTime, now time.Time) *RescheduleAttempt {
	return &RescheduleAttempt{
		ID:           uuid.New(),
		BookingID:    booking.ID,
		BookingTitle: booking.DisplayTitle(),
		EventTypeID:  booking.EventTypeID,
		OldStart:     booking.Start,
		NewDate:      newDate,
		NewTime:      newTime,
		State:        RescheduleLocated,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MarkOriginalCancelled phase one done
func (a *RescheduleAttempt) MarkOriginalCancelled(now time.Time) {
	a.State = RescheduleOriginalCancelled
	a.UpdatedAt = now
}

// MarkCompleted replacement booked
func (a *RescheduleAttempt) MarkCompleted(newBookingID int64, now time.Time) {
	a.State = RescheduleCompleted
	a.NewBookingID = &newBookingID
	a.UpdatedAt = now
}

// MarkReplacementFailed original is gone, replacement was not created
func (a *RescheduleAttempt) MarkReplacementFailed(reason string, now time.Time) {
	a.State = RescheduleReplacementFailed
	a.FailureReason = reason
	a.UpdatedAt = now
}
