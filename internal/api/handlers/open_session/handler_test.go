package open_session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/session"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/logger"
)

func open(h *Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	return rec
}

func TestHandle_OpensSession(t *testing.T) {
	manager := session.NewManager(nil)
	h := NewHandler(manager, logger.NewNop())

	rec := open(h)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body SessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotEmpty(t, body.SessionID)
	assert.Equal(t, 1, manager.Len())
}

func TestHandle_SessionLimit(t *testing.T) {
	manager := session.NewManager(nil, session.WithMaxSessions(1))
	h := NewHandler(manager, logger.NewNop())

	require.Equal(t, http.StatusCreated, open(h).Code)

	rec := open(h)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, 1, manager.Len())
}
