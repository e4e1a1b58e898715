package list_event_types

import "errors"

var (
	// ErrCalendar не удалось получить типы встреч
	ErrCalendar = errors.New("list_event_types: calendar error")
)
