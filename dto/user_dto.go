package dto

import "github.com/taskhive/taskhive/models"

// UserSummary is the {id, name}-shaped expansion of a foreign user id used
// wherever a response wants a display name instead of a bare id.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
}

// NewUserSummary builds a summary from a user row.
func NewUserSummary(u models.User) *UserSummary {
	return &UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Avatar:   u.Avatar,
	}
}

// SummaryIndex maps user ids to summaries for response shaping. Built from
// one batched lookup, never per-row queries.
func SummaryIndex(users []models.User) map[string]*UserSummary {
	index := make(map[string]*UserSummary, len(users))
	for _, u := range users {
		index[u.ID] = NewUserSummary(u)
	}
	return index
}

// UpdateProfileRequest represents a user editing their own profile
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

// UpdateRoleRequest represents an admin changing a user's role
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
