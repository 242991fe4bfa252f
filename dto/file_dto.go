package dto

import (
	"time"

	"github.com/taskhive/taskhive/models"
)

// FileFilter represents list filter criteria for files
type FileFilter struct {
	ProjectID string
	TaskID    string
}

// FileResponse represents the standard response format for a file. The
// stored name stays internal; content is served through the uploads route.
type FileResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Size        int64        `json:"size"`
	MimeType    string       `json:"mimeType"`
	Description string       `json:"description"`
	UploadedBy  string       `json:"uploadedBy"`
	Uploader    *UserSummary `json:"uploader,omitempty"`
	TaskID      *string      `json:"taskId"`
	ProjectID   *string      `json:"projectId"`
	URL         string       `json:"url"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// NewFileResponse maps a file row to its response shape.
func NewFileResponse(f models.File, uploader *UserSummary) FileResponse {
	return FileResponse{
		ID:          f.ID,
		Name:        f.Name,
		Size:        f.Size,
		MimeType:    f.MimeType,
		Description: f.Description,
		UploadedBy:  f.UploadedBy,
		Uploader:    uploader,
		TaskID:      f.TaskID,
		ProjectID:   f.ProjectID,
		URL:         "/uploads/" + f.StoredName,
		CreatedAt:   f.CreatedAt,
	}
}
