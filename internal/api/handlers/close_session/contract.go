package close_session

import "github.com/google/uuid"

type SessionManager interface {
	Close(id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
