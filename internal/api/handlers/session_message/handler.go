package session_message

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
	sessions  SessionManager
	assistant Assistant
	logger    Logger
}

func NewHandler(sessions SessionManager, assistant Assistant, logger Logger) *Handler {
	return &Handler{
		sessions:  sessions,
		assistant: assistant,
		logger:    logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/messages - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			h.logger.Warn("POST /sessions/{id}/messages - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/messages - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req MessageRequest
	if !handlers.DecodeAndValidate(w, r, &req) {
		h.logger.Warn("POST /sessions/{id}/messages - Invalid request body: session_id=%s", sessionID)
		return
	}

	reply := h.assistant.Respond(r.Context(), sess, req.Message)

	h.logger.Info("POST /sessions/{id}/messages - Replied: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{SessionID: sessionID.String(), Reply: reply})
}
