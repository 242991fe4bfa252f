package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/taskhive/taskhive/apperrors"
	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/policy"
	"github.com/taskhive/taskhive/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo *repositories.CommentRepository
	taskRepo    *repositories.TaskRepository
	projectRepo *repositories.ProjectRepository
	userRepo    *repositories.UserRepository
	activity    *ActivityService
}

// NewCommentService creates a new comment service instance
func NewCommentService() *CommentService {
	return &CommentService{
		commentRepo: repositories.NewCommentRepository(),
		taskRepo:    repositories.NewTaskRepository(),
		projectRepo: repositories.NewProjectRepository(),
		userRepo:    repositories.NewUserRepository(),
		activity:    NewActivityService(),
	}
}

// CreateComment attaches a comment to a task or a project, never both
func (s *CommentService) CreateComment(actor *policy.Actor, req dto.CreateCommentRequest) (dto.CommentResponse, error) {
	if err := policy.CanPerform(actor, policy.ActionCreateComment, policy.Target{}); err != nil {
		return dto.CommentResponse{}, err
	}

	taskID := deref(req.TaskID)
	projectID := deref(req.ProjectID)
	if taskID == "" && projectID == "" {
		return dto.CommentResponse{}, apperrors.Validation("either task_id or project_id is required")
	}
	if taskID != "" && projectID != "" {
		return dto.CommentResponse{}, apperrors.Validation("comment cannot target both a task and a project")
	}

	comment := models.Comment{
		Content: req.Content,
		UserID:  actor.ID,
	}

	// The activity entry references the enclosing project in both cases
	var feedProject string
	var feedTask *string
	var description string

	if taskID != "" {
		task, err := s.taskRepo.FindByID(taskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.CommentResponse{}, apperrors.NotFound("task not found")
			}
			return dto.CommentResponse{}, err
		}
		comment.TaskID = &task.ID
		feedProject = task.ProjectID
		feedTask = &task.ID
		description = fmt.Sprintf("commented on task %q", task.Title)
	} else {
		project, err := s.projectRepo.FindByID(projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.CommentResponse{}, apperrors.NotFound("project not found")
			}
			return dto.CommentResponse{}, err
		}
		comment.ProjectID = &project.ID
		feedProject = project.ID
		description = fmt.Sprintf("commented on project %q", project.Name)
	}

	if err := s.commentRepo.Create(&comment); err != nil {
		return dto.CommentResponse{}, err
	}

	s.activity.Record(models.ActionCreateComment, description, actor.ID, &feedProject, feedTask)

	user, err := s.userRepo.FindByID(actor.ID)
	if err != nil {
		return dto.NewCommentResponse(comment, nil), nil
	}
	return dto.NewCommentResponse(comment, dto.NewUserSummary(user)), nil
}

// ListComments retrieves comments for a task or a project in conversation
// order with authors resolved to user summaries
func (s *CommentService) ListComments(actor *policy.Actor, filter dto.CommentFilter) ([]dto.CommentResponse, error) {
	if err := policy.CanPerform(actor, policy.ActionViewComment, policy.Target{}); err != nil {
		return nil, err
	}
	if filter.TaskID == "" && filter.ProjectID == "" {
		return nil, apperrors.Validation("a task_id or project_id filter is required")
	}

	comments, err := s.commentRepo.Find(filter.TaskID, filter.ProjectID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.UserID)
	}
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	index := dto.SummaryIndex(users)

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, dto.NewCommentResponse(c, index[c.UserID]))
	}
	return responses, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
