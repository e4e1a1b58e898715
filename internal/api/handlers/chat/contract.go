package chat

import (
	"context"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/session"
)

type Assistant interface {
	Respond(ctx context.Context, sess *session.Session, message string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
