package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskhive/taskhive/apperrors"
	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/logging"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/policy"
	"github.com/taskhive/taskhive/repositories"
	"github.com/taskhive/taskhive/storage"
)

// MaxUploadBytes caps uploads at 50 MiB, checked before any content is written
const MaxUploadBytes = 50 << 20

// FileService handles business logic for file attachments
type FileService struct {
	fileRepo    *repositories.FileRepository
	taskRepo    *repositories.TaskRepository
	projectRepo *repositories.ProjectRepository
	userRepo    *repositories.UserRepository
	activity    *ActivityService
	store       *storage.LocalStore
}

// NewFileService creates a new file service instance
func NewFileService(store *storage.LocalStore) *FileService {
	return &FileService{
		fileRepo:    repositories.NewFileRepository(),
		taskRepo:    repositories.NewTaskRepository(),
		projectRepo: repositories.NewProjectRepository(),
		userRepo:    repositories.NewUserRepository(),
		activity:    NewActivityService(),
		store:       store,
	}
}

// Upload stores the file content and its metadata. The content write happens
// first, metadata failure after a successful write leaves an orphaned file
// on disk which is tolerated.
func (s *FileService) Upload(actor *policy.Actor, header *multipart.FileHeader, description, taskID, projectID string) (dto.FileResponse, error) {
	if err := policy.CanPerform(actor, policy.ActionUploadFile, policy.Target{}); err != nil {
		return dto.FileResponse{}, err
	}

	if header.Size > MaxUploadBytes {
		return dto.FileResponse{}, apperrors.Validation("file exceeds the 50 MiB limit")
	}

	file := models.File{
		Name:        filepath.Base(header.Filename),
		MimeType:    header.Header.Get("Content-Type"),
		Description: description,
		UploadedBy:  actor.ID,
	}

	var feedTask *string
	switch {
	case taskID != "":
		task, err := s.taskRepo.FindByID(taskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.FileResponse{}, apperrors.NotFound("task not found")
			}
			return dto.FileResponse{}, err
		}
		if projectID != "" && projectID != task.ProjectID {
			return dto.FileResponse{}, apperrors.Validation("task does not belong to the given project")
		}
		file.TaskID = &task.ID
		file.ProjectID = &task.ProjectID
		feedTask = &task.ID
	case projectID != "":
		project, err := s.projectRepo.FindByID(projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.FileResponse{}, apperrors.NotFound("project not found")
			}
			return dto.FileResponse{}, err
		}
		file.ProjectID = &project.ID
	default:
		return dto.FileResponse{}, apperrors.Validation("either task_id or project_id is required")
	}

	src, err := header.Open()
	if err != nil {
		return dto.FileResponse{}, apperrors.Internal("failed to read uploaded file", err)
	}
	defer src.Close()

	file.StoredName = uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	size, err := s.store.Save(file.StoredName, src)
	if err != nil {
		return dto.FileResponse{}, apperrors.Internal("failed to store uploaded file", err)
	}
	file.Size = size

	if err := s.fileRepo.Create(&file); err != nil {
		return dto.FileResponse{}, err
	}

	s.activity.Record(models.ActionUploadFile,
		fmt.Sprintf("uploaded file %q", file.Name),
		actor.ID, file.ProjectID, feedTask)

	return dto.NewFileResponse(file, s.uploaderSummary(actor.ID)), nil
}

// ListFiles retrieves file metadata matching the filter with uploaders
// resolved to user summaries
func (s *FileService) ListFiles(actor *policy.Actor, filter dto.FileFilter) ([]dto.FileResponse, error) {
	if err := policy.CanPerform(actor, policy.ActionViewFile, policy.Target{}); err != nil {
		return nil, err
	}

	files, err := s.fileRepo.Find(filter.ProjectID, filter.TaskID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, f.UploadedBy)
	}
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	index := dto.SummaryIndex(users)

	responses := make([]dto.FileResponse, 0, len(files))
	for _, f := range files {
		responses = append(responses, dto.NewFileResponse(f, index[f.UploadedBy]))
	}
	return responses, nil
}

// GetFile retrieves file metadata by ID
func (s *FileService) GetFile(actor *policy.Actor, id string) (dto.FileResponse, error) {
	file, err := s.findFile(id)
	if err != nil {
		return dto.FileResponse{}, err
	}
	if err := policy.CanPerform(actor, policy.ActionViewFile, policy.Target{CreatorID: file.UploadedBy}); err != nil {
		return dto.FileResponse{}, err
	}
	return dto.NewFileResponse(file, s.uploaderSummary(file.UploadedBy)), nil
}

// DeleteFile removes file metadata and then the stored content. A content
// removal failure is logged and does not undo the metadata deletion.
func (s *FileService) DeleteFile(actor *policy.Actor, id string) error {
	file, err := s.findFile(id)
	if err != nil {
		return err
	}

	var ownerID string
	if file.ProjectID != nil {
		ownerID, err = s.projectRepo.OwnerID(*file.ProjectID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	if err := policy.CanPerform(actor, policy.ActionDeleteFile, policy.Target{
		ProjectOwnerID: ownerID,
		CreatorID:      file.UploadedBy,
	}); err != nil {
		return err
	}

	if err := s.fileRepo.Delete(id); err != nil {
		return err
	}
	if err := s.store.Remove(file.StoredName); err != nil {
		logging.Logger.WithError(err).WithField("file", file.StoredName).Warn("failed to remove file content")
	}

	s.activity.Record(models.ActionDeleteFile,
		fmt.Sprintf("deleted file %q", file.Name),
		actor.ID, file.ProjectID, file.TaskID)

	return nil
}

func (s *FileService) findFile(id string) (models.File, error) {
	file, err := s.fileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.File{}, apperrors.NotFound("file not found")
		}
		return models.File{}, err
	}
	return file, nil
}

func (s *FileService) uploaderSummary(userID string) *dto.UserSummary {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil
	}
	return dto.NewUserSummary(user)
}
