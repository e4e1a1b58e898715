package check_availability

import (
	"context"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"
)

type SchedulingService interface {
	CheckAvailability(ctx context.Context, req *models.CheckAvailabilityRequest) *models.Reply
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
