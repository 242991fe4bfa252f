package repositories

import (
	"github.com/taskhive/taskhive/database"
	"github.com/taskhive/taskhive/models"
)

// CommentRepository handles database operations for comments
type CommentRepository struct{}

// NewCommentRepository creates a new comment repository
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

// Find retrieves comments for a task or a project in conversation order
func (r *CommentRepository) Find(taskID, projectID string) ([]models.Comment, error) {
	var comments []models.Comment
	query := database.DB.Order("created_at ASC")
	if taskID != "" {
		query = query.Where("task_id = ?", taskID)
	}
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	err := query.Find(&comments).Error
	return comments, err
}

// Create inserts a new comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	return database.DB.Create(comment).Error
}
