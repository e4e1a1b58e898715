package open_session

import "github.com/m04kA/SMC-SchedulingAssistant/internal/service/session"

type SessionManager interface {
	Open() (*session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
