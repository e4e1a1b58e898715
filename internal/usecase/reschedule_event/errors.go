package reschedule_event

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_event: invalid input data")

	// ErrInvalidDate дата исходной встречи не распознана
	ErrInvalidDate = errors.New("reschedule_event: invalid date")

	// ErrInvalidNewDate новая дата не распознана
	ErrInvalidNewDate = errors.New("reschedule_event: invalid new date")

	// ErrInvalidTime время не распознано
	ErrInvalidTime = errors.New("reschedule_event: invalid time")

	// ErrBookingNotFound на указанное время нет встречи
	ErrBookingNotFound = errors.New("reschedule_event: booking not found")

	// ErrUnknownEventType у найденной встречи нет типа, перебронировать нельзя
	ErrUnknownEventType = errors.New("reschedule_event: booking has no event type")

	// ErrCancelFailed не удалось отменить исходную встречу, ничего не изменено
	ErrCancelFailed = errors.New("reschedule_event: failed to cancel original booking")

	// ErrCalendar не удалось получить список встреч
	ErrCalendar = errors.New("reschedule_event: calendar error")
)

// BookingNotFoundError на указанное время нет активной встречи
type BookingNotFoundError struct {
	TimeText string
	Date     domain.CanonicalDate
}

func (e *BookingNotFoundError) Error() string {
	return fmt.Sprintf("%v: no meeting at %s on %s", ErrBookingNotFound, e.TimeText, e.Date.Human())
}

func (e *BookingNotFoundError) Unwrap() error {
	return ErrBookingNotFound
}
