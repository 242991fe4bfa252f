package dto

// ChatbotRequest represents a message forwarded to the chatbot collaborator
type ChatbotRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatbotResponse represents the collaborator's reply, passed through opaquely
type ChatbotResponse struct {
	Reply string `json:"reply"`
}
