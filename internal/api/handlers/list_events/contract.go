package list_events

import (
	"context"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"
)

type SchedulingService interface {
	ListEvents(ctx context.Context) *models.Reply
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
