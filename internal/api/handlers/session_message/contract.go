package session_message

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/session"
)

type SessionManager interface {
	Get(id uuid.UUID) (*session.Session, error)
}

type Assistant interface {
	Respond(ctx context.Context, sess *session.Session, message string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
