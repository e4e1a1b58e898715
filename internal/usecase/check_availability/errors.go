package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInvalidDate дата не распознана, исходная ошибка парсера доступна через errors.As
	ErrInvalidDate = errors.New("check_availability: invalid date")

	// ErrInvalidTime время не распознано
	ErrInvalidTime = errors.New("check_availability: invalid time")

	// ErrCalendar ошибка календаря, *calcom.APIError доступна через errors.As
	ErrCalendar = errors.New("check_availability: calendar error")
)
