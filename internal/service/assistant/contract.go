package assistant

import (
	"context"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"
)

// Scheduler операции планирования с готовыми ответами
type Scheduler interface {
	CheckAvailability(ctx context.Context, req *models.CheckAvailabilityRequest) *models.Reply
	BookMeeting(ctx context.Context, req *models.BookMeetingRequest) *models.Reply
	ListEvents(ctx context.Context) *models.Reply
	ListEventTypes(ctx context.Context) *models.Reply
	DefaultEmail() string
}

// Orchestrator внешний диалоговый слой для сообщений, которые ассистент не разобрал сам
type Orchestrator interface {
	Respond(ctx context.Context, message string) (string, error)
}

// TimeParser разбирает время из фрагмента сообщения
type TimeParser interface {
	Parse(text string) (domain.CanonicalTime, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
