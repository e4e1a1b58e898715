package list_events

import "errors"

var (
	// ErrCalendar не удалось получить список встреч
	ErrCalendar = errors.New("list_events: calendar error")
)
