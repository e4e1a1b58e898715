package book_meeting

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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookMeetingRequest
	if !handlers.DecodeAndValidate(w, r, &req) {
		h.logger.Warn("POST /bookings - Invalid request body")
		return
	}

	reply := h.service.BookMeeting(r.Context(), req.ToServiceRequest())

	if reply.Outcome == models.OutcomeBooked {
		h.logger.Info("POST /bookings - Meeting booked: event_type_id=%d, booking_id=%d", req.EventTypeID, *reply.BookingID)
		handlers.RespondReply(w, reply)
		return
	}

	// слот занят или недоступен
	if reply.Outcome == models.OutcomeSuggested || reply.Outcome == models.OutcomeNoSlots {
		h.logger.Warn("POST /bookings - Slot not available: event_type_id=%d, date=%q, time=%q", req.EventTypeID, req.Date, req.Time)
		handlers.RespondJSON(w, http.StatusConflict, handlers.NewReplyResponse(reply))
		return
	}

	h.logger.Warn("POST /bookings - Booking failed: event_type_id=%d, outcome=%s", req.EventTypeID, reply.Outcome)
	handlers.RespondReply(w, reply)
}
