package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"
)

type sampleRequest struct {
	EventTypeID int64  `json:"eventTypeId" validate:"required,gt=0"`
	Email       string `json:"attendeeEmail,omitempty" validate:"omitempty,email"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		ok      bool
		wantErr string
	}{
		{name: "valid", body: `{"eventTypeId": 5}`, ok: true},
		{name: "missing required", body: `{}`, wantErr: "eventTypeId is a required field"},
		{name: "bad email", body: `{"eventTypeId": 5, "attendeeEmail": "nope"}`, wantErr: "attendeeEmail must be a valid email address"},
		{name: "unknown field", body: `{"eventTypeId": 5, "extra": true}`, wantErr: "invalid request body"},
		{name: "broken json", body: `{"eventTypeId":`, wantErr: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst sampleRequest
			ok := DecodeAndValidate(rec, req, &dst)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, int64(5), dst.EventTypeID)
				return
			}
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantErr, decodeError(t, rec))
		})
	}
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	var dst sampleRequest
	assert.ErrorIs(t, DecodeJSON(req, &dst), ErrEmptyBody)
}

func TestRespondReply(t *testing.T) {
	id := int64(42)
	tests := []struct {
		name       string
		reply      *models.Reply
		wantStatus int
	}{
		{"booked", &models.Reply{Text: "ok", Outcome: models.OutcomeBooked, BookingID: &id}, http.StatusOK},
		{"invalid", &models.Reply{Text: "bad", Outcome: models.OutcomeInvalidInput}, http.StatusUnprocessableEntity},
		{"not found", &models.Reply{Text: "none", Outcome: models.OutcomeNotFound}, http.StatusNotFound},
		{"calendar", &models.Reply{Text: "down", Outcome: models.OutcomeCalendarError}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondReply(rec, tt.reply)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ReplyResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.reply.Text, body.Message)
			assert.Equal(t, string(tt.reply.Outcome), body.Outcome)
		})
	}
}

func TestNewReplyResponse_Suggestion(t *testing.T) {
	resp := NewReplyResponse(&models.Reply{
		Text:    "closest",
		Outcome: models.OutcomeSuggested,
		Suggestion: &models.Suggestion{
			EventTypeID: 7,
			DateToken:   "tomorrow",
			Time:        domain.CanonicalTime{Hour: 9, Minute: 30},
		},
	})

	require.NotNil(t, resp.Suggestion)
	assert.Equal(t, SuggestionResponse{EventTypeID: 7, Date: "tomorrow", Time: "9:30 AM"}, *resp.Suggestion)
}
