package dto

import (
	"time"

	"github.com/taskhive/taskhive/models"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	ProjectID   string  `json:"projectId" binding:"required"`
	Status      string  `json:"status"`
	AssigneeID  *string `json:"assigneeId"`
	Deadline    string  `json:"deadline"`
}

// UpdateTaskRequest represents a partial task update; PATCH and PUT both
// bind to it. Nil fields are left untouched. CompletedAt is absent on
// purpose: it is stamped by the transition rule, never written by clients.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	AssigneeID  *string `json:"assigneeId"`
	Deadline    *string `json:"deadline"`
}

// TaskFilter represents list filter criteria for tasks
type TaskFilter struct {
	ProjectID  string
	AssigneeID string
}

// TaskResponse represents the standard response format for a task
type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	ProjectID   string            `json:"projectId"`
	CreatorID   string            `json:"creatorId"`
	Creator     *UserSummary      `json:"creator,omitempty"`
	AssigneeID  *string           `json:"assigneeId"`
	Assignee    *UserSummary      `json:"assignee,omitempty"`
	Deadline    *time.Time        `json:"deadline"`
	CompletedAt *time.Time        `json:"completedAt"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// NewTaskResponse maps a task row to its response shape, expanding creator
// and assignee through the summary index when present.
func NewTaskResponse(t models.Task, users map[string]*UserSummary) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		ProjectID:   t.ProjectID,
		CreatorID:   t.CreatorID,
		Creator:     users[t.CreatorID],
		AssigneeID:  t.AssigneeID,
		Deadline:    t.Deadline,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.AssigneeID != nil {
		resp.Assignee = users[*t.AssigneeID]
	}
	return resp
}
