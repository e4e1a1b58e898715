package domain

import "strings"

// PendingActionKind kind of action awaiting the user's answer
type PendingActionKind string

const (
	PendingBookingConfirmation PendingActionKind = "booking_confirmation"
)

// PendingAction single pending slot held by a conversation session
type PendingAction struct {
	Kind          PendingActionKind
	EventTypeID   int64
	EventTypeName string
	DateToken     string // токен даты, как его вернул парсер
	SuggestedTime CanonicalTime
	OriginalTime  string // время в формулировке пользователя
}

// BulkConfirmation state of a bulk cancel request
type BulkConfirmation int

const (
	AwaitingConfirmation BulkConfirmation = iota
	Confirmed
	Abandoned
)

func (c BulkConfirmation) String() string {
	switch c {
	case Confirmed:
		return "confirmed"
	case Abandoned:
		return "abandoned"
	default:
		return "awaiting_confirmation"
	}
}

// ParseBulkConfirmation maps the transport flag onto the enum.
// Unknown values are treated as not yet confirmed.
func ParseBulkConfirmation(s string) BulkConfirmation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "confirmed", "confirm", "true", "yes":
		return Confirmed
	case "abandoned", "abandon":
		return Abandoned
	default:
		return AwaitingConfirmation
	}
}
