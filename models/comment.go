package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment attaches to exactly one of a task or a project.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	TaskID    *string   `json:"taskId" gorm:"type:uuid;default:null;index"`
	ProjectID *string   `json:"projectId" gorm:"type:uuid;default:null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
