package cancel_event

import (
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

// Outcome итог запроса на отмену
type Outcome int

const (
	// OutcomeNothingToCancel в диапазоне нет подходящих встреч
	OutcomeNothingToCancel Outcome = iota
	// OutcomeConfirmationRequired массовая отмена ждет подтверждения, удаления не выполнялись
	OutcomeConfirmationRequired
	// OutcomeAbandoned пользователь отказался от массовой отмены
	OutcomeAbandoned
	// OutcomeCompleted отмена выполнена (по каждой встрече свой результат)
	OutcomeCompleted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmationRequired:
		return "confirmation_required"
	case OutcomeAbandoned:
		return "abandoned"
	case OutcomeCompleted:
		return "completed"
	default:
		return "nothing_to_cancel"
	}
}

// ConfirmationReason почему требуется подтверждение
type ConfirmationReason string

const (
	ReasonWholeWeek        ConfirmationReason = "week"
	ReasonMultipleMeetings ConfirmationReason = "multiple"
)

// Request модель запроса на отмену
type Request struct {
	TimeText     *string // точное время встречи (опционально)
	DateText     *string // дата или "this week", по умолчанию сегодня
	Confirmation domain.BulkConfirmation
}

// Result результат отмены одной встречи
type Result struct {
	Booking domain.Booking
	Err     error
}

// Response итог отмены
type Response struct {
	Outcome    Outcome
	Reason     ConfirmationReason // только для OutcomeConfirmationRequired
	RangeStart time.Time          // локальная полночь первого дня диапазона
	RangeEnd   time.Time          // локальная полночь последнего дня диапазона
	TimeText   string
	Matching   []domain.Booking // найденные встречи в хронологическом порядке
	Results    []Result
}
