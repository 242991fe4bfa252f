package services

import (
	"time"

	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/repositories"
)

// DashboardService computes aggregate counts on demand, nothing is cached
type DashboardService struct {
	projectRepo *repositories.ProjectRepository
	taskRepo    *repositories.TaskRepository
	memberRepo  *repositories.MemberRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService() *DashboardService {
	return &DashboardService{
		projectRepo: repositories.NewProjectRepository(),
		taskRepo:    repositories.NewTaskRepository(),
		memberRepo:  repositories.NewMemberRepository(),
	}
}

// GetDashboard aggregates the overview counts. Time windows are measured
// from the wall clock at call time with inclusive bounds.
func (s *DashboardService) GetDashboard() (dto.DashboardResponse, error) {
	now := time.Now()
	var response dto.DashboardResponse
	var err error

	if response.TotalProjects, err = s.projectRepo.CountAll(); err != nil {
		return response, err
	}
	if response.TasksInProgress, err = s.taskRepo.CountByStatus(models.TaskStatusInProgress); err != nil {
		return response, err
	}
	if response.TasksCompleted, err = s.taskRepo.CountByStatus(models.TaskStatusCompleted); err != nil {
		return response, err
	}
	if response.TeamMembers, err = s.memberRepo.CountDistinctUsers(); err != nil {
		return response, err
	}
	if response.TasksDueSoon, err = s.taskRepo.CountDueBetween(now, now.AddDate(0, 0, 7)); err != nil {
		return response, err
	}
	if response.TasksCompletedWeek, err = s.taskRepo.CountCompletedBetween(now.AddDate(0, 0, -7), now); err != nil {
		return response, err
	}
	if response.ProjectsThisMonth, err = s.projectRepo.CountCreatedSince(now.AddDate(0, -1, 0)); err != nil {
		return response, err
	}

	return response, nil
}
