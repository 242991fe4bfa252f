package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/taskhive/taskhive/apperrors"
	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/policy"
	"github.com/taskhive/taskhive/repositories"
	"github.com/taskhive/taskhive/utils"
)

// TaskService handles business logic for tasks
type TaskService struct {
	taskRepo    *repositories.TaskRepository
	projectRepo *repositories.ProjectRepository
	userRepo    *repositories.UserRepository
	activity    *ActivityService
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{
		taskRepo:    repositories.NewTaskRepository(),
		projectRepo: repositories.NewProjectRepository(),
		userRepo:    repositories.NewUserRepository(),
		activity:    NewActivityService(),
	}
}

// ListTasks retrieves tasks matching the filter with creator and assignee
// resolved to user summaries
func (s *TaskService) ListTasks(actor *policy.Actor, filter dto.TaskFilter) ([]dto.TaskResponse, error) {
	if err := policy.CanPerform(actor, policy.ActionViewTask, policy.Target{}); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.Find(filter.ProjectID, filter.AssigneeID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(tasks)*2)
	for _, t := range tasks {
		ids = append(ids, t.CreatorID)
		if t.AssigneeID != nil {
			ids = append(ids, *t.AssigneeID)
		}
	}
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	index := dto.SummaryIndex(users)

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, dto.NewTaskResponse(t, index))
	}
	return responses, nil
}

// GetTask retrieves a single task by ID
func (s *TaskService) GetTask(actor *policy.Actor, id string) (dto.TaskResponse, error) {
	task, err := s.findTask(id)
	if err != nil {
		return dto.TaskResponse{}, err
	}
	if err := policy.CanPerform(actor, policy.ActionViewTask, policy.Target{CreatorID: task.CreatorID}); err != nil {
		return dto.TaskResponse{}, err
	}
	return s.taskResponse(task)
}

// CreateTask creates a new task in a project
func (s *TaskService) CreateTask(actor *policy.Actor, req dto.CreateTaskRequest) (dto.TaskResponse, error) {
	if err := policy.CanPerform(actor, policy.ActionCreateTask, policy.Target{}); err != nil {
		return dto.TaskResponse{}, err
	}

	if _, err := s.projectRepo.FindByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TaskResponse{}, apperrors.NotFound("project not found")
		}
		return dto.TaskResponse{}, err
	}

	assigneeID, err := s.resolveAssignee(req.AssigneeID)
	if err != nil {
		return dto.TaskResponse{}, err
	}

	deadline, err := utils.ParseDeadline(req.Deadline)
	if err != nil {
		return dto.TaskResponse{}, err
	}

	status := models.TaskStatus(req.Status)
	if status == "" {
		status = models.TaskStatusTodo
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		ProjectID:   req.ProjectID,
		CreatorID:   actor.ID,
		AssigneeID:  assigneeID,
		Deadline:    deadline,
	}
	// A task born completed counts as entering the completed state
	if status == models.TaskStatusCompleted {
		now := time.Now()
		task.CompletedAt = &now
	}

	if err := s.taskRepo.Create(&task); err != nil {
		return dto.TaskResponse{}, err
	}

	s.activity.Record(models.ActionCreateTask,
		fmt.Sprintf("created task %q", task.Title),
		actor.ID, &task.ProjectID, &task.ID)

	return s.taskResponse(task)
}

// UpdateTask applies partial changes to a task. Moving the status into
// completed from any other state stamps CompletedAt once, the stamp is kept
// when the task later leaves or re-enters completed.
func (s *TaskService) UpdateTask(actor *policy.Actor, id string, req dto.UpdateTaskRequest) (dto.TaskResponse, error) {
	task, err := s.findTask(id)
	if err != nil {
		return dto.TaskResponse{}, err
	}
	if err := policy.CanPerform(actor, policy.ActionUpdateTask, policy.Target{CreatorID: task.CreatorID}); err != nil {
		return dto.TaskResponse{}, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return dto.TaskResponse{}, apperrors.Validation("task title cannot be empty")
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssigneeID != nil {
		assigneeID, err := s.resolveAssignee(req.AssigneeID)
		if err != nil {
			return dto.TaskResponse{}, err
		}
		task.AssigneeID = assigneeID
	}
	if req.Deadline != nil {
		if *req.Deadline == "" {
			task.Deadline = nil
		} else {
			deadline, err := utils.ParseDeadline(*req.Deadline)
			if err != nil {
				return dto.TaskResponse{}, err
			}
			task.Deadline = deadline
		}
	}
	if req.Status != nil {
		next := models.TaskStatus(*req.Status)
		if next == "" {
			return dto.TaskResponse{}, apperrors.Validation("task status cannot be empty")
		}
		if next == models.TaskStatusCompleted && task.Status != models.TaskStatusCompleted {
			now := time.Now()
			task.CompletedAt = &now
		}
		task.Status = next
	}

	if err := s.taskRepo.Update(&task); err != nil {
		return dto.TaskResponse{}, err
	}

	s.activity.Record(models.ActionUpdateTask,
		fmt.Sprintf("updated task %q", task.Title),
		actor.ID, &task.ProjectID, &task.ID)

	return s.taskResponse(task)
}

// DeleteTask removes a task. Allowed for the task creator, the owner of the
// task's project and admins.
func (s *TaskService) DeleteTask(actor *policy.Actor, id string) error {
	task, err := s.findTask(id)
	if err != nil {
		return err
	}

	ownerID, err := s.projectRepo.OwnerID(task.ProjectID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := policy.CanPerform(actor, policy.ActionDeleteTask, policy.Target{
		ProjectOwnerID: ownerID,
		CreatorID:      task.CreatorID,
	}); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return err
	}

	s.activity.Record(models.ActionDeleteTask,
		fmt.Sprintf("deleted task %q", task.Title),
		actor.ID, &task.ProjectID, &task.ID)

	return nil
}

func (s *TaskService) findTask(id string) (models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, apperrors.NotFound("task not found")
		}
		return models.Task{}, err
	}
	return task, nil
}

// resolveAssignee validates an assignee reference. An empty string clears
// the assignment.
func (s *TaskService) resolveAssignee(assigneeID *string) (*string, error) {
	if assigneeID == nil || *assigneeID == "" {
		return nil, nil
	}
	user, err := s.userRepo.FindByID(*assigneeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("assignee not found")
		}
		return nil, err
	}
	return &user.ID, nil
}

func (s *TaskService) taskResponse(task models.Task) (dto.TaskResponse, error) {
	ids := []string{task.CreatorID}
	if task.AssigneeID != nil {
		ids = append(ids, *task.AssigneeID)
	}
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return dto.TaskResponse{}, err
	}
	return dto.NewTaskResponse(task, dto.SummaryIndex(users)), nil
}
