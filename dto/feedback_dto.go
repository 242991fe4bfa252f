package dto

// FeedbackRequest represents an anonymous feedback submission
type FeedbackRequest struct {
	Category string `json:"category" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// FeedbackResponse echoes the stored preview back to the submitter
type FeedbackResponse struct {
	Preview string `json:"preview"`
}
