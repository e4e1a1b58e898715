package chat

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/session"
)

type Handler struct {
	assistant Assistant
	logger    Logger
}

func NewHandler(assistant Assistant, logger Logger) *Handler {
	return &Handler{
		assistant: assistant,
		logger:    logger,
	}
}

// Handle POST /chat
// Каждый запрос получает собственную сессию: подтверждения между запросами не сохраняются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !handlers.DecodeAndValidate(w, r, &req) {
		h.logger.Warn("POST /chat - Invalid request body")
		return
	}

	reply := h.assistant.Respond(r.Context(), session.New(time.Now()), req.Message)

	h.logger.Info("POST /chat - Replied")
	handlers.RespondJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}
