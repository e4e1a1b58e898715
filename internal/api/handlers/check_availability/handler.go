package check_availability

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

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if !handlers.DecodeAndValidate(w, r, &req) {
		h.logger.Warn("POST /availability - Invalid request body")
		return
	}

	reply := h.service.CheckAvailability(r.Context(), req.ToServiceRequest())

	h.logger.Info("POST /availability - event_type_id=%d, date=%q, outcome=%s", req.EventTypeID, req.Date, reply.Outcome)
	handlers.RespondReply(w, reply)
}
