package calcom

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учет вызовов календаря
type MetricsRecorder interface {
	ObserveCalendarCall(operation, outcome string, duration time.Duration)
}
