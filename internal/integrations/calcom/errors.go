package calcom

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured возвращается, когда не задан API ключ
	ErrNotConfigured = errors.New("calcom client: api key not configured")

	// ErrRequestFailed транспортная ошибка, таймаут или отмена контекста
	ErrRequestFailed = errors.New("calcom client: request failed")

	// ErrSlotUnavailable календарь отказал: на это время нет свободных участников
	ErrSlotUnavailable = errors.New("calcom client: slot unavailable")

	// ErrValidation календарь отклонил данные запроса
	ErrValidation = errors.New("calcom client: validation error")

	// ErrUnexpectedStatus любой другой неуспешный код ответа
	ErrUnexpectedStatus = errors.New("calcom client: unexpected status")

	// ErrInvalidResponse тело ответа не удалось разобрать
	ErrInvalidResponse = errors.New("calcom client: invalid response")
)

// маркеры в теле ответа Cal.com
const (
	markerNoAvailableUsers = "no_available_users_found_error"
	markerValidation       = "validation"
)

// APIError ошибка обращения к календарю. Kind один из sentinel-ошибок пакета.
type APIError struct {
	Kind       error
	StatusCode int    // 0 для транспортных ошибок
	Message    string // усечено до MaxCollaboratorMessageLength
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("Request failed: %s", e.Message)
	}
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// Outcome метка для метрик
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrSlotUnavailable):
		return "slot_unavailable"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrUnexpectedStatus):
		return "unexpected_status"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	default:
		return "request_failed"
	}
}
