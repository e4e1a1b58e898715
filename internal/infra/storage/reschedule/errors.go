package reschedule

import "errors"

var (
	// ErrAttemptNotFound возвращается, когда попытка переноса не найдена
	ErrAttemptNotFound = errors.New("reschedule.repository: attempt not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reschedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reschedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reschedule.repository: failed to scan row")
)
