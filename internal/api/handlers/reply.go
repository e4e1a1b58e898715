package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/service/scheduling/models"
)

// ReplyResponse ответ операции планирования
type ReplyResponse struct {
	Message    string              `json:"message"`
	Outcome    string              `json:"outcome"`
	Suggestion *SuggestionResponse `json:"suggestion,omitempty"`
	BookingID  *int64              `json:"bookingId,omitempty"`
}

// SuggestionResponse слот, предложенный вместо запрошенного
type SuggestionResponse struct {
	EventTypeID int64  `json:"eventTypeId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// ReplyStatus HTTP статус по категории ответа
func ReplyStatus(outcome models.Outcome) int {
	switch outcome {
	case models.OutcomeInvalidInput:
		return http.StatusUnprocessableEntity
	case models.OutcomeNotFound:
		return http.StatusNotFound
	case models.OutcomeCalendarError:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}

// NewReplyResponse конвертирует ответ сервиса в HTTP модель
func NewReplyResponse(reply *models.Reply) ReplyResponse {
	resp := ReplyResponse{
		Message:   reply.Text,
		Outcome:   string(reply.Outcome),
		BookingID: reply.BookingID,
	}
	if s := reply.Suggestion; s != nil {
		resp.Suggestion = &SuggestionResponse{
			EventTypeID: s.EventTypeID,
			Date:        s.DateToken,
			Time:        s.Time.String(),
		}
	}
	return resp
}

// RespondReply пишет готовый ответ операции со статусом по его категории
func RespondReply(w http.ResponseWriter, reply *models.Reply) {
	RespondJSON(w, ReplyStatus(reply.Outcome), NewReplyResponse(reply))
}
