package close_session

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/session"
)

const (
	msgInvalidSessionID = "invalid session id"
	msgSessionNotFound  = "session not found"
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

// Handle DELETE /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	if err := h.sessions.Close(sessionID); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			h.logger.Warn("DELETE /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("DELETE /sessions/{id} - Failed to close session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session closed: session_id=%s", sessionID)
	handlers.RespondNoContent(w)
}
