package reschedule_event

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"
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

// Handle POST /api/v1/bookings/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RescheduleEventRequest
	if !handlers.DecodeAndValidate(w, r, &req) {
		h.logger.Warn("POST /bookings/reschedule - Invalid request body")
		return
	}

	reply := h.service.RescheduleEvent(r.Context(), req.ToServiceRequest())

	switch reply.Outcome {
	case models.OutcomeRescheduled:
		h.logger.Info("POST /bookings/reschedule - Rescheduled: old=%q, new=%q", req.OldTime, req.NewTime)
	case models.OutcomePartiallyRescheduled:
		// исходная встреча уже отменена, ответ 200 с описанием обеих фаз
		h.logger.Error("POST /bookings/reschedule - Partially rescheduled: old=%q, new=%q", req.OldTime, req.NewTime)
	default:
		h.logger.Warn("POST /bookings/reschedule - outcome=%s", reply.Outcome)
	}

	handlers.RespondReply(w, reply)
}
