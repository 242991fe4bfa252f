package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/taskhive/taskhive/database"
	"github.com/taskhive/taskhive/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindAll retrieves all projects ordered by creation time
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := database.DB.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID retrieves a project by ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	err := database.DB.Where("id = ?", id).First(&project).Error
	return project, err
}

// OwnerID returns the owner of a project without loading the full row
func (r *ProjectRepository) OwnerID(id string) (string, error) {
	var project models.Project
	err := database.DB.Select("owner_id").Where("id = ?", id).First(&project).Error
	return project.OwnerID, err
}

// Create inserts a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return database.DB.Create(project).Error
}

// Update persists changes to an existing project
func (r *ProjectRepository) Update(project *models.Project) error {
	return database.DB.Save(project).Error
}

// Delete removes a project together with its members, tasks, comments and
// file metadata in a single transaction. Activity rows are kept so the feed
// retains history. File contents on disk are the caller's responsibility.
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var taskIDs []string
		if err := tx.Model(&models.Task{}).Where("project_id = ?", id).Pluck("id", &taskIDs).Error; err != nil {
			return err
		}
		if len(taskIDs) > 0 {
			if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.File{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Project{}).Error
	})
}

// CountAll returns the total number of projects
func (r *ProjectRepository) CountAll() (int64, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).Count(&count).Error
	return count, err
}

// CountCreatedSince returns the number of projects created at or after the given time
func (r *ProjectRepository) CountCreatedSince(since time.Time) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
