package domain

// Time format constants
const (
	TimeFormat      = "15:04"             // HH:MM, внутреннее представление
	DateFormat      = "2006-01-02"        // YYYY-MM-DD, токен даты для API
	HumanDateFormat = "Monday, January 02" // дата в сообщениях пользователю
	HumanTimeFormat = "03:04 PM"          // время в подтверждениях и списках
	SlotTimeFormat  = "3:04 PM"           // время слота без ведущего нуля
	ShortDateFormat = "January 02"
)

// Date tokens understood by the calendar-side tooling
const (
	TokenToday    = "today"
	TokenTomorrow = "tomorrow"
	TokenThisWeek = "this week"
)

// Slot matching and booking defaults
const (
	DefaultEventLengthMinutes = 15
	MaxAlternatives           = 2
	MaxAlternativeDistance    = 120 // минуты
	MaxConfirmationExamples   = 3

	// MaxDateDistanceDays кандидаты дальше этого расстояния от текущей даты отбрасываются
	MaxDateDistanceDays = 5 * 365

	// MaxCollaboratorMessageLength длина текста ошибки календаря, попадающего в сообщение
	MaxCollaboratorMessageLength = 500
)
