package session_message

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/session"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/logger"
)

type echoAssistant struct {
	sessions []*session.Session
}

func (a *echoAssistant) Respond(_ context.Context, sess *session.Session, message string) string {
	a.sessions = append(a.sessions, sess)
	return "echo: " + message
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/sessions/{sessionId}/messages", h.Handle).Methods(http.MethodPost)
	return r
}

func post(r http.Handler, id, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/messages", strings.NewReader(body)))
	return rec
}

func TestHandle_RepliesWithinSession(t *testing.T) {
	manager := session.NewManager(nil)
	sess, err := manager.Open()
	require.NoError(t, err)
	assistant := &echoAssistant{}
	r := newRouter(NewHandler(manager, assistant, logger.NewNop()))

	rec := post(r, sess.ID.String(), `{"message": "book tomorrow 2pm"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "echo: book tomorrow 2pm", body.Reply)
	assert.Equal(t, sess.ID.String(), body.SessionID)
	require.Len(t, assistant.sessions, 1)
	assert.Same(t, sess, assistant.sessions[0])
}

func TestHandle_Errors(t *testing.T) {
	manager := session.NewManager(nil)
	r := newRouter(NewHandler(manager, &echoAssistant{}, logger.NewNop()))

	rec := post(r, "not-a-uuid", `{"message": "hi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(r, uuid.NewString(), `{"message": "hi"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	sess, err := manager.Open()
	require.NoError(t, err)
	rec = post(r, sess.ID.String(), `{"message": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
