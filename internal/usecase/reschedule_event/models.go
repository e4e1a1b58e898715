package reschedule_event

import (
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/book_meeting"
)

// Request модель запроса на перенос
type Request struct {
	OldTimeText string
	NewTimeText string
	DateText    string  // дата исходной встречи, по умолчанию "tomorrow"
	NewDateText *string // по умолчанию дата исходной встречи
}

// Response итог переноса. При ReplacementErr != nil исходная встреча
// уже отменена, а новая не создана.
type Response struct {
	Attempt        *domain.RescheduleAttempt
	Original       domain.Booking
	OriginalStart  time.Time // локальное время пользователя
	OldTimeText    string
	Replacement    *book_meeting.Response
	ReplacementErr error
}

// Completed возвращает true, если обе фазы выполнены
func (r *Response) Completed() bool {
	return r.Attempt != nil && r.Attempt.State == domain.RescheduleCompleted
}
