package book_meeting

import (
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// Request модель запроса на бронирование
type Request struct {
	EventTypeID   int64
	DateText      string
	TimeText      string
	AttendeeName  string
	AttendeeEmail string
	Reason        string // заметка к встрече, может быть пустой
}

// Response результат бронирования
type Response struct {
	Booking         *domain.Booking
	Date            domain.CanonicalDate
	Time            domain.CanonicalTime
	Start           time.Time // локальное время пользователя
	DurationMinutes int
}
