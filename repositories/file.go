package repositories

import (
	"github.com/taskhive/taskhive/database"
	"github.com/taskhive/taskhive/models"
)

// FileRepository handles database operations for file metadata
type FileRepository struct{}

// NewFileRepository creates a new file repository
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Find retrieves file metadata, optionally filtered by project and task
func (r *FileRepository) Find(projectID, taskID string) ([]models.File, error) {
	var files []models.File
	query := database.DB.Order("created_at DESC")
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if taskID != "" {
		query = query.Where("task_id = ?", taskID)
	}
	err := query.Find(&files).Error
	return files, err
}

// FindByID retrieves file metadata by ID
func (r *FileRepository) FindByID(id string) (models.File, error) {
	var file models.File
	err := database.DB.Where("id = ?", id).First(&file).Error
	return file, err
}

// FindByStoredName retrieves file metadata by its on-disk name
func (r *FileRepository) FindByStoredName(storedName string) (models.File, error) {
	var file models.File
	err := database.DB.Where("stored_name = ?", storedName).First(&file).Error
	return file, err
}

// Create inserts new file metadata
func (r *FileRepository) Create(file *models.File) error {
	return database.DB.Create(file).Error
}

// Delete removes file metadata by ID
func (r *FileRepository) Delete(id string) error {
	return database.DB.Where("id = ?", id).Delete(&models.File{}).Error
}
