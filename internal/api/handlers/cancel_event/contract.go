package cancel_event

import (
	"context"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"
)

type SchedulingService interface {
	CancelEvent(ctx context.Context, req *models.CancelEventRequest) *models.Reply
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
