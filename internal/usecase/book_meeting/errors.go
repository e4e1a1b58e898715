package book_meeting

import (
	"errors"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/usecase/check_availability"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_meeting: invalid input data")

	// ErrInvalidDate дата не распознана
	ErrInvalidDate = errors.New("book_meeting: invalid date")

	// ErrInvalidTime время не распознано
	ErrInvalidTime = errors.New("book_meeting: invalid time")

	// ErrSlotNotAvailable запрошенного времени нет среди свободных слотов
	ErrSlotNotAvailable = errors.New("book_meeting: slot is not available")

	// ErrSlotTaken календарь отказал при создании: слот занят или вне рабочих часов
	ErrSlotTaken = errors.New("book_meeting: slot already taken")

	// ErrInvalidBookingData календарь отклонил данные встречи
	ErrInvalidBookingData = errors.New("book_meeting: invalid booking data")

	// ErrEventType не удалось получить тип встречи
	ErrEventType = errors.New("book_meeting: failed to get event type")

	// ErrCalendar прочие ошибки календаря
	ErrCalendar = errors.New("book_meeting: calendar error")
)

// SlotUnavailableError слот не прошел повторную проверку.
// Availability содержит ближайшие варианты для ответа пользователю.
type SlotUnavailableError struct {
	Availability *check_availability.Response
}

func (e *SlotUnavailableError) Error() string {
	return ErrSlotNotAvailable.Error() + ": " + e.Availability.Match.Kind.String()
}

func (e *SlotUnavailableError) Unwrap() error {
	return ErrSlotNotAvailable
}
