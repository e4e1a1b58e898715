package cancel_event

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

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelEventRequest
	if !handlers.DecodeAndValidate(w, r, &req) {
		h.logger.Warn("POST /bookings/cancel - Invalid request body")
		return
	}

	reply := h.service.CancelEvent(r.Context(), req.ToServiceRequest())

	h.logger.Info("POST /bookings/cancel - outcome=%s", reply.Outcome)
	handlers.RespondReply(w, reply)
}
