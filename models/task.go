package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus represents the workflow state of a task. The well-known states
// are listed below; projects may use additional custom states, so the column
// stays an open set.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task represents a unit of work inside a project
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"default:null"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(30);default:'todo'"`
	ProjectID   string     `json:"projectId" gorm:"type:uuid;not null;index"`
	CreatorID   string     `json:"creatorId" gorm:"type:uuid;not null"`
	AssigneeID  *string    `json:"assigneeId" gorm:"type:uuid;default:null;index"`
	Deadline    *time.Time `json:"deadline" gorm:"default:null"`
	// CompletedAt is stamped by the service on the transition into
	// completed; it is never written from client input.
	CompletedAt *time.Time `json:"completedAt" gorm:"default:null"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Relations
	Project  *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Creator  *User    `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Assignee *User    `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
