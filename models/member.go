package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectMember links a user to a project. The project owner is an implicit
// member and never gets a row here.
type ProjectMember struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_project_user"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_project_user"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Project *Project `json:"-" gorm:"foreignKey:ProjectID"`
}

func (m *ProjectMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
