package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/taskhive/taskhive/apperrors"
	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/logging"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/policy"
	"github.com/taskhive/taskhive/repositories"
	"github.com/taskhive/taskhive/storage"
	"github.com/taskhive/taskhive/utils"
)

// ProjectService handles business logic for projects and their memberships
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	memberRepo  *repositories.MemberRepository
	userRepo    *repositories.UserRepository
	fileRepo    *repositories.FileRepository
	activity    *ActivityService
	store       *storage.LocalStore
}

// NewProjectService creates a new project service instance
func NewProjectService(store *storage.LocalStore) *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
		memberRepo:  repositories.NewMemberRepository(),
		userRepo:    repositories.NewUserRepository(),
		fileRepo:    repositories.NewFileRepository(),
		activity:    NewActivityService(),
		store:       store,
	}
}

// ListProjects retrieves all projects with their owners resolved
func (s *ProjectService) ListProjects(actor *policy.Actor) ([]dto.ProjectResponse, error) {
	if err := policy.CanPerform(actor, policy.ActionViewProject, policy.Target{}); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.OwnerID)
	}
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	owners := dto.SummaryIndex(users)

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, dto.NewProjectResponse(p, owners[p.OwnerID]))
	}
	return responses, nil
}

// GetProject retrieves a single project by ID
func (s *ProjectService) GetProject(actor *policy.Actor, id string) (dto.ProjectResponse, error) {
	project, err := s.findProject(id)
	if err != nil {
		return dto.ProjectResponse{}, err
	}
	if err := policy.CanPerform(actor, policy.ActionViewProject, policy.Target{ProjectOwnerID: project.OwnerID}); err != nil {
		return dto.ProjectResponse{}, err
	}
	return dto.NewProjectResponse(project, s.ownerSummary(project.OwnerID)), nil
}

// CreateProject creates a new project owned by the actor
func (s *ProjectService) CreateProject(actor *policy.Actor, req dto.CreateProjectRequest) (dto.ProjectResponse, error) {
	if err := policy.CanPerform(actor, policy.ActionCreateProject, policy.Target{}); err != nil {
		return dto.ProjectResponse{}, err
	}

	deadline, err := utils.ParseDeadline(req.Deadline)
	if err != nil {
		return dto.ProjectResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusActive
	}

	project := models.Project{
		Name:     req.Name,
		Status:   status,
		Deadline: deadline,
		OwnerID:  actor.ID,
	}
	if err := s.projectRepo.Create(&project); err != nil {
		return dto.ProjectResponse{}, err
	}

	s.activity.Record(models.ActionCreateProject,
		fmt.Sprintf("created project %q", project.Name),
		actor.ID, &project.ID, nil)

	return dto.NewProjectResponse(project, s.ownerSummary(project.OwnerID)), nil
}

// UpdateProject applies partial changes to a project
func (s *ProjectService) UpdateProject(actor *policy.Actor, id string, req dto.UpdateProjectRequest) (dto.ProjectResponse, error) {
	project, err := s.findProject(id)
	if err != nil {
		return dto.ProjectResponse{}, err
	}
	if err := policy.CanPerform(actor, policy.ActionUpdateProject, policy.Target{ProjectOwnerID: project.OwnerID}); err != nil {
		return dto.ProjectResponse{}, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return dto.ProjectResponse{}, apperrors.Validation("project name cannot be empty")
		}
		project.Name = *req.Name
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Deadline != nil {
		// An empty string clears the deadline
		if *req.Deadline == "" {
			project.Deadline = nil
		} else {
			deadline, err := utils.ParseDeadline(*req.Deadline)
			if err != nil {
				return dto.ProjectResponse{}, err
			}
			project.Deadline = deadline
		}
	}

	if err := s.projectRepo.Update(&project); err != nil {
		return dto.ProjectResponse{}, err
	}

	s.activity.Record(models.ActionUpdateProject,
		fmt.Sprintf("updated project %q", project.Name),
		actor.ID, &project.ID, nil)

	return dto.NewProjectResponse(project, s.ownerSummary(project.OwnerID)), nil
}

// DeleteProject removes a project with its members, tasks, comments and
// files. Stored file contents are removed best effort after the database
// transaction commits.
func (s *ProjectService) DeleteProject(actor *policy.Actor, id string) error {
	project, err := s.findProject(id)
	if err != nil {
		return err
	}
	if err := policy.CanPerform(actor, policy.ActionDeleteProject, policy.Target{ProjectOwnerID: project.OwnerID}); err != nil {
		return err
	}

	files, err := s.fileRepo.Find(id, "")
	if err != nil {
		return err
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return err
	}

	for _, f := range files {
		if err := s.store.Remove(f.StoredName); err != nil {
			logging.Logger.WithError(err).WithField("file", f.StoredName).Warn("failed to remove file content")
		}
	}

	s.activity.Record(models.ActionDeleteProject,
		fmt.Sprintf("deleted project %q", project.Name),
		actor.ID, &project.ID, nil)

	return nil
}

// ListMembers retrieves the member list of a project. The owner leads the
// list even though no membership row exists for them.
func (s *ProjectService) ListMembers(actor *policy.Actor, projectID string) ([]dto.MemberResponse, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanPerform(actor, policy.ActionViewProject, policy.Target{ProjectOwnerID: project.OwnerID}); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.FindByProject(projectID)
	if err != nil {
		return nil, err
	}

	ids := []string{project.OwnerID}
	for _, m := range members {
		ids = append(ids, m.UserID)
	}
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	index := dto.SummaryIndex(users)

	responses := []dto.MemberResponse{{User: index[project.OwnerID], Owner: true}}
	for _, m := range members {
		added := m.CreatedAt
		responses = append(responses, dto.MemberResponse{User: index[m.UserID], AddedAt: &added})
	}
	return responses, nil
}

// AddMember adds a user to a project's member list
func (s *ProjectService) AddMember(actor *policy.Actor, projectID string, req dto.AddMemberRequest) (dto.MemberResponse, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return dto.MemberResponse{}, err
	}
	if err := policy.CanPerform(actor, policy.ActionAddMember, policy.Target{ProjectOwnerID: project.OwnerID}); err != nil {
		return dto.MemberResponse{}, err
	}

	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MemberResponse{}, apperrors.NotFound("user not found")
		}
		return dto.MemberResponse{}, err
	}

	if user.ID == project.OwnerID {
		return dto.MemberResponse{}, apperrors.Validation("the project owner is already a member")
	}
	exists, err := s.memberRepo.Exists(projectID, user.ID)
	if err != nil {
		return dto.MemberResponse{}, err
	}
	if exists {
		return dto.MemberResponse{}, apperrors.Validation("user is already a member of this project")
	}

	member := models.ProjectMember{ProjectID: projectID, UserID: user.ID}
	if err := s.memberRepo.Add(&member); err != nil {
		return dto.MemberResponse{}, err
	}

	s.activity.Record(models.ActionAddMember,
		fmt.Sprintf("added %s to project %q", user.Username, project.Name),
		actor.ID, &project.ID, nil)

	added := member.CreatedAt
	return dto.MemberResponse{User: dto.NewUserSummary(user), AddedAt: &added}, nil
}

// RemoveMember removes a user from a project's member list
func (s *ProjectService) RemoveMember(actor *policy.Actor, projectID, userID string) error {
	project, err := s.findProject(projectID)
	if err != nil {
		return err
	}
	if err := policy.CanPerform(actor, policy.ActionRemoveMember, policy.Target{ProjectOwnerID: project.OwnerID}); err != nil {
		return err
	}

	if userID == project.OwnerID {
		return apperrors.Validation("the project owner cannot be removed")
	}
	exists, err := s.memberRepo.Exists(projectID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound("membership not found")
	}

	if err := s.memberRepo.Remove(projectID, userID); err != nil {
		return err
	}

	s.activity.Record(models.ActionRemoveMember,
		fmt.Sprintf("removed a member from project %q", project.Name),
		actor.ID, &project.ID, nil)

	return nil
}

func (s *ProjectService) findProject(id string) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperrors.NotFound("project not found")
		}
		return models.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) ownerSummary(ownerID string) *dto.UserSummary {
	user, err := s.userRepo.FindByID(ownerID)
	if err != nil {
		return nil
	}
	return dto.NewUserSummary(user)
}
