package assistant

// EventTypeAlias название типа встречи, по которому его узнают в сообщении
type EventTypeAlias struct {
	Name string
	ID   int64
}

// Options настройки ассистента
type Options struct {
	EventTypes         []EventTypeAlias
	DefaultEventTypeID int64
}

// Сообщения ассистента
const (
	MsgBookingDropped    = "❌ Booking cancelled. Would you like to try a different time?"
	MsgAskNewTime        = "🔄 Please provide the new date and time for rescheduling."
	MsgOrchestratorError = "I apologize, but I wasn't able to complete your request. Please try again."
	MsgHelp              = "I can help you manage your calendar. Try:\n" +
		"- \"book a 30 min meeting tomorrow at 3pm\"\n" +
		"- \"event types\"\n" +
		"- \"my meetings\""
)
