package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/taskhive/taskhive/apperrors"
	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/repositories"
)

// UserService handles business logic for the user directory
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
	}
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id string) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.NotFound("user not found")
		}
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// ListUsers retrieves all users, optionally filtered by role
func (s *UserService) ListUsers(role string) ([]models.User, error) {
	if role != "" && !models.Role(role).Valid() {
		return nil, apperrors.Validation("invalid role filter")
	}
	users, err := s.userRepo.FindAll(role)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// UpdateProfile updates the caller's own display fields
func (s *UserService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.NotFound("user not found")
		}
		return models.User{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}

	if err := s.userRepo.Update(&user); err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// UpdateRole changes a user's role. Only the closed role set is accepted,
// route-level middleware restricts this to admins.
func (s *UserService) UpdateRole(id string, req dto.UpdateRoleRequest) (models.User, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return models.User{}, apperrors.Validation("invalid role: must be admin, team_leader or member")
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.NotFound("user not found")
		}
		return models.User{}, err
	}

	user.Role = role
	if err := s.userRepo.Update(&user); err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// Summaries resolves the given user IDs to display summaries with a single
// batched query. IDs with no matching user are absent from the map.
func (s *UserService) Summaries(ids []string) (map[string]*dto.UserSummary, error) {
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	return dto.SummaryIndex(users), nil
}
