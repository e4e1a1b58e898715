package reschedule_attempts

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers"
)

const msgInvalidBookingID = "bookingId query parameter must be a positive integer"

type Handler struct {
	journal AttemptJournal
	logger  Logger
}

func NewHandler(journal AttemptJournal, logger Logger) *Handler {
	return &Handler{
		journal: journal,
		logger:  logger,
	}
}

// Handle GET /api/v1/reschedule-attempts?bookingId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(r.URL.Query().Get("bookingId"), 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("GET /reschedule-attempts - Invalid booking ID: %q", r.URL.Query().Get("bookingId"))
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	attempts, err := h.journal.ListByBooking(r.Context(), bookingID)
	if err != nil {
		h.logger.Error("GET /reschedule-attempts - Failed to list attempts: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := AttemptsResponse{Attempts: make([]AttemptResponse, 0, len(attempts))}
	for _, a := range attempts {
		resp.Attempts = append(resp.Attempts, toAttemptResponse(a))
	}

	h.logger.Info("GET /reschedule-attempts - booking_id=%d, count=%d", bookingID, len(resp.Attempts))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
