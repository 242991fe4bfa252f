package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityAction tags the kind of mutation an activity row records.
type ActivityAction string

const (
	ActionCreateProject  ActivityAction = "create_project"
	ActionUpdateProject  ActivityAction = "update_project"
	ActionDeleteProject  ActivityAction = "delete_project"
	ActionAddMember      ActivityAction = "add_member"
	ActionRemoveMember   ActivityAction = "remove_member"
	ActionCreateTask     ActivityAction = "create_task"
	ActionUpdateTask     ActivityAction = "update_task"
	ActionDeleteTask     ActivityAction = "delete_task"
	ActionCreateComment  ActivityAction = "create_comment"
	ActionUploadFile     ActivityAction = "upload_file"
	ActionDeleteFile     ActivityAction = "delete_file"
	ActionSubmitFeedback ActivityAction = "submit_feedback"
)

// AnonymousUserID is the reserved sentinel recorded as the actor of
// anonymized submissions. App-generated IDs are random v4 UUIDs, so the nil
// UUID can never collide with a real user; resolving it is expected to miss.
const AnonymousUserID = "00000000-0000-0000-0000-000000000000"

// Activity is one row of the append-only audit trail. Rows are never updated
// or deleted by normal operation.
type Activity struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Action      ActivityAction `json:"action" gorm:"type:varchar(40);not null;index"`
	Description string         `json:"description" gorm:"type:text;not null"`
	UserID      string         `json:"userId" gorm:"type:uuid;not null;index"`
	ProjectID   *string        `json:"projectId" gorm:"type:uuid;default:null;index"`
	TaskID      *string        `json:"taskId" gorm:"type:uuid;default:null;index"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
