package list_events

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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reply := h.service.ListEvents(r.Context())

	h.logger.Info("GET /bookings - outcome=%s", reply.Outcome)
	handlers.RespondReply(w, reply)
}
