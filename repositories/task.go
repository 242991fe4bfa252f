package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/taskhive/taskhive/database"
	"github.com/taskhive/taskhive/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct{}

// NewTaskRepository creates a new task repository
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// Find retrieves tasks, optionally filtered by project and assignee
func (r *TaskRepository) Find(projectID, assigneeID string) ([]models.Task, error) {
	var tasks []models.Task
	query := database.DB.Order("created_at DESC")
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if assigneeID != "" {
		query = query.Where("assignee_id = ?", assigneeID)
	}
	err := query.Find(&tasks).Error
	return tasks, err
}

// FindByID retrieves a task by ID
func (r *TaskRepository) FindByID(id string) (models.Task, error) {
	var task models.Task
	err := database.DB.Where("id = ?", id).First(&task).Error
	return task, err
}

// Create inserts a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return database.DB.Create(task).Error
}

// Update persists changes to an existing task
func (r *TaskRepository) Update(task *models.Task) error {
	return database.DB.Save(task).Error
}

// Delete removes a task and its comments. Files uploaded to the task are kept
// but detached, they remain reachable through the project.
func (r *TaskRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.File{}).Where("task_id = ?", id).Update("task_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Task{}).Error
	})
}

// CountByStatus returns the number of tasks with the given status
func (r *TaskRepository) CountByStatus(status models.TaskStatus) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Task{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountDueBetween returns the number of unfinished tasks whose deadline falls
// inside the given window, bounds inclusive.
func (r *TaskRepository) CountDueBetween(from, to time.Time) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Task{}).
		Where("deadline IS NOT NULL AND deadline >= ? AND deadline <= ?", from, to).
		Where("status <> ?", models.TaskStatusCompleted).
		Count(&count).Error
	return count, err
}

// CountCompletedBetween returns the number of tasks completed inside the given
// window, bounds inclusive.
func (r *TaskRepository) CountCompletedBetween(from, to time.Time) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Task{}).
		Where("completed_at IS NOT NULL AND completed_at >= ? AND completed_at <= ?", from, to).
		Count(&count).Error
	return count, err
}
