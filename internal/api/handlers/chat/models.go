package chat

// ChatRequest HTTP request model
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// ChatResponse HTTP response model
type ChatResponse struct {
	Reply string `json:"reply"`
}
