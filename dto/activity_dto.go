package dto

import (
	"time"

	"github.com/taskhive/taskhive/models"
)

// ActivityFilter represents list filter criteria for the activity feed
type ActivityFilter struct {
	Limit     int
	ProjectID string
	UserID    string
}

// ActivityResponse represents one activity feed entry. User is nil for the
// anonymous sentinel actor; that is expected, not an integrity error.
type ActivityResponse struct {
	ID          string                `json:"id"`
	Action      models.ActivityAction `json:"action"`
	Description string                `json:"description"`
	UserID      string                `json:"userId"`
	User        *UserSummary          `json:"user,omitempty"`
	ProjectID   *string               `json:"projectId"`
	TaskID      *string               `json:"taskId"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// NewActivityResponse maps an activity row to its response shape.
func NewActivityResponse(a models.Activity, user *UserSummary) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		Action:      a.Action,
		Description: a.Description,
		UserID:      a.UserID,
		User:        user,
		ProjectID:   a.ProjectID,
		TaskID:      a.TaskID,
		CreatedAt:   a.CreatedAt,
	}
}
