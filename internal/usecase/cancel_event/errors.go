package cancel_event

import "errors"

var (
	// ErrInvalidDate дата не распознана
	ErrInvalidDate = errors.New("cancel_event: invalid date")

	// ErrInvalidTime время не распознано
	ErrInvalidTime = errors.New("cancel_event: invalid time")

	// ErrCalendar не удалось получить список встреч
	ErrCalendar = errors.New("cancel_event: calendar error")
)
