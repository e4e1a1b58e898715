package list_event_types

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers"
)

type Handler struct {
	service SchedulingService
	logger  Logger
}

func NewHandler(service SchedulingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/event-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reply := h.service.ListEventTypes(r.Context())

	h.logger.Info("GET /event-types - outcome=%s", reply.Outcome)
	handlers.RespondReply(w, reply)
}
