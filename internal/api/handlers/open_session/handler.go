package open_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/session"
)

type Handler struct {
	sessions SessionManager
	logger   Logger
}

func NewHandler(sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Open()
	if err != nil {
		if errors.Is(err, session.ErrTooManySessions) {
			h.logger.Warn("POST /sessions - Session limit reached")
			handlers.RespondError(w, http.StatusServiceUnavailable, "too many open sessions, try again later")
			return
		}
		h.logger.Error("POST /sessions - Failed to open session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions - Session opened: session_id=%s", sess.ID)
	handlers.RespondJSON(w, http.StatusCreated, SessionResponse{
		SessionID: sess.ID.String(),
		CreatedAt: sess.CreatedAt.UTC().Format(time.RFC3339),
	})
}
