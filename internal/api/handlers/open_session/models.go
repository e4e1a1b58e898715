package open_session

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	CreatedAt string `json:"createdAt"`
}
