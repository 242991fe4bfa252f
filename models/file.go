package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File is the metadata row for an uploaded attachment. The content itself
// lives in the content store under StoredName; the two are deleted together,
// best effort on the content side.
type File struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"not null"` // original filename
	StoredName  string    `json:"-" gorm:"uniqueIndex;not null"`
	Size        int64     `json:"size"`
	MimeType    string    `json:"mimeType" gorm:"type:varchar(100)"`
	Description string    `json:"description" gorm:"default:null"`
	UploadedBy  string    `json:"uploadedBy" gorm:"type:uuid;not null;index"`
	TaskID      *string   `json:"taskId" gorm:"type:uuid;default:null;index"`
	ProjectID   *string   `json:"projectId" gorm:"type:uuid;default:null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Uploader *User `json:"uploader,omitempty" gorm:"foreignKey:UploadedBy"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
