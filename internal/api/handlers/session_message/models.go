package session_message

// MessageRequest HTTP request model
type MessageRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// MessageResponse HTTP response model
type MessageResponse struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
}
