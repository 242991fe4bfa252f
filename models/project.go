package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus values known to the UI. The column is an open set so teams
// can define their own.
const (
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusCompleted = "completed"
)

// Project represents a project container
type Project struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string         `json:"name" gorm:"not null"`
	Status    string         `json:"status" gorm:"type:varchar(30);default:'active'"`
	Deadline  *time.Time     `json:"deadline" gorm:"default:null"`
	OwnerID   string         `json:"ownerId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Owner   *User           `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Members []ProjectMember `json:"members,omitempty" gorm:"foreignKey:ProjectID"`
	Tasks   []Task          `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
