package repositories

import (
	"github.com/taskhive/taskhive/database"
	"github.com/taskhive/taskhive/models"
)

// ActivityRepository handles database operations for the activity feed.
// Rows are append-only, there is no update or delete.
type ActivityRepository struct{}

// NewActivityRepository creates a new activity repository
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

// Create appends a new activity entry
func (r *ActivityRepository) Create(activity *models.Activity) error {
	return database.DB.Create(activity).Error
}

// Find retrieves activity entries newest first, optionally filtered by
// project or acting user
func (r *ActivityRepository) Find(projectID, userID string, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	query := database.DB.Order("created_at DESC").Limit(limit)
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Find(&activities).Error
	return activities, err
}
