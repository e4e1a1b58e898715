package models

import "github.com/m04kA/SMC-SchedulingAssistant/internal/domain"

// Outcome категория ответа, по ней транспорт и ассистент принимают решения
type Outcome string

const (
	OutcomeAvailable            Outcome = "available"
	OutcomeSuggested            Outcome = "suggested"
	OutcomeNoSlots              Outcome = "no_slots"
	OutcomeListed               Outcome = "listed"
	OutcomeBooked               Outcome = "booked"
	OutcomeCancelled            Outcome = "cancelled"
	OutcomeNothingToCancel      Outcome = "nothing_to_cancel"
	OutcomeConfirmationRequired Outcome = "confirmation_required"
	OutcomeAbandoned            Outcome = "abandoned"
	OutcomeRescheduled          Outcome = "rescheduled"
	OutcomePartiallyRescheduled Outcome = "partially_rescheduled"
	OutcomeNotFound             Outcome = "not_found"
	OutcomeInvalidInput         Outcome = "invalid_input"
	OutcomeCalendarError        Outcome = "calendar_error"
)

// Suggestion ближайший свободный слот, предложенный вместо запрошенного времени
type Suggestion struct {
	EventTypeID   int64
	DateToken     string
	Time          domain.CanonicalTime
	RequestedText string
}

// Reply готовый текст для пользователя
type Reply struct {
	Text       string
	Outcome    Outcome
	Suggestion *Suggestion
	BookingID  *int64
}

// IsError ответ описывает неудачу
func (r *Reply) IsError() bool {
	switch r.Outcome {
	case OutcomeInvalidInput, OutcomeCalendarError, OutcomeNotFound:
		return true
	}
	return false
}

// CheckAvailabilityRequest запрос проверки доступности
type CheckAvailabilityRequest struct {
	EventTypeID int64
	Date        string
	Time        *string
}

// BookMeetingRequest запрос бронирования
type BookMeetingRequest struct {
	EventTypeID   int64
	Date          string
	Time          string
	AttendeeName  string
	AttendeeEmail string // по умолчанию email пользователя из конфигурации
	Reason        string
}

// CancelEventRequest запрос отмены
type CancelEventRequest struct {
	Time         *string
	Date         *string
	Confirmation domain.BulkConfirmation
}

// RescheduleEventRequest запрос переноса
type RescheduleEventRequest struct {
	OldTime string
	NewTime string
	Date    string
	NewDate *string
}
