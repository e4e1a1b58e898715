package health

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers"
)

// HealthResponse HTTP response model
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Handle GET /health
func Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
