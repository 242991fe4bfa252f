package dto

import (
	"time"

	"github.com/taskhive/taskhive/models"
)

// CreateCommentRequest represents the request payload for creating a comment.
// Exactly one of TaskID/ProjectID must be set; the task-scoped route fills
// TaskID itself.
type CreateCommentRequest struct {
	Content   string  `json:"content" binding:"required"`
	TaskID    *string `json:"taskId"`
	ProjectID *string `json:"projectId"`
}

// CommentFilter represents list filter criteria for comments
type CommentFilter struct {
	TaskID    string
	ProjectID string
}

// CommentResponse represents the standard response format for a comment
type CommentResponse struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	UserID    string       `json:"userId"`
	User      *UserSummary `json:"user,omitempty"`
	TaskID    *string      `json:"taskId"`
	ProjectID *string      `json:"projectId"`
	CreatedAt time.Time    `json:"createdAt"`
}

// NewCommentResponse maps a comment row to its response shape.
func NewCommentResponse(c models.Comment, user *UserSummary) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		UserID:    c.UserID,
		User:      user,
		TaskID:    c.TaskID,
		ProjectID: c.ProjectID,
		CreatedAt: c.CreatedAt,
	}
}
