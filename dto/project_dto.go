package dto

import (
	"time"

	"github.com/taskhive/taskhive/models"
)

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name     string `json:"name" binding:"required"`
	Status   string `json:"status"`
	Deadline string `json:"deadline"` // date-like string, RFC3339 or 2006-01-02
}

// UpdateProjectRequest represents the request payload for updating an existing
// project. Nil fields are left untouched.
type UpdateProjectRequest struct {
	Name     *string `json:"name"`
	Status   *string `json:"status"`
	Deadline *string `json:"deadline"`
}

// AddMemberRequest represents the request payload for adding a project member
type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// ProjectResponse represents the standard response format for a project
type ProjectResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Status    string       `json:"status"`
	Deadline  *time.Time   `json:"deadline"`
	OwnerID   string       `json:"ownerId"`
	Owner     *UserSummary `json:"owner,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// NewProjectResponse maps a project row to its response shape; owners lists
// the summary when the caller resolved it.
func NewProjectResponse(p models.Project, owner *UserSummary) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Status:    p.Status,
		Deadline:  p.Deadline,
		OwnerID:   p.OwnerID,
		Owner:     owner,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// MemberResponse represents one row of a project's member listing. The owner
// appears with Owner set even though no membership row exists.
type MemberResponse struct {
	User    *UserSummary `json:"user"`
	Owner   bool         `json:"owner"`
	AddedAt *time.Time   `json:"addedAt,omitempty"`
}
