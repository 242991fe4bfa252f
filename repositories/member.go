package repositories

import (
	"github.com/taskhive/taskhive/database"
	"github.com/taskhive/taskhive/models"
)

// MemberRepository handles database operations for project memberships
type MemberRepository struct{}

// NewMemberRepository creates a new member repository
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// FindByProject retrieves all membership rows for a project
func (r *MemberRepository) FindByProject(projectID string) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	err := database.DB.Where("project_id = ?", projectID).Order("created_at ASC").Find(&members).Error
	return members, err
}

// Exists reports whether a membership row exists for the given project and user.
// The project owner is not stored as a row, callers must check ownership separately.
func (r *MemberRepository) Exists(projectID, userID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

// Add inserts a new membership row
func (r *MemberRepository) Add(member *models.ProjectMember) error {
	return database.DB.Create(member).Error
}

// Remove deletes the membership row for the given project and user
func (r *MemberRepository) Remove(projectID, userID string) error {
	return database.DB.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectMember{}).Error
}

// CountDistinctUsers returns the number of distinct users involved in any
// project, counting both owners and added members once each.
func (r *MemberRepository) CountDistinctUsers() (int64, error) {
	var count int64
	err := database.DB.Raw(`
		SELECT COUNT(*) FROM (
			SELECT owner_id AS user_id FROM projects WHERE deleted_at IS NULL
			UNION
			SELECT user_id FROM project_members
		) AS team
	`).Scan(&count).Error
	return count, err
}
