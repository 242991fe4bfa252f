package services

import (
	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/logging"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/repositories"
)

// ActivityService records and lists the append-only activity feed
type ActivityService struct {
	activityRepo *repositories.ActivityRepository
	userRepo     *repositories.UserRepository
}

// NewActivityService creates a new activity service instance
func NewActivityService() *ActivityService {
	return &ActivityService{
		activityRepo: repositories.NewActivityRepository(),
		userRepo:     repositories.NewUserRepository(),
	}
}

// Record appends one feed entry. Callers invoke it only after the mutation
// they describe has succeeded. An append failure is logged and swallowed so
// the completed mutation still reports success.
func (s *ActivityService) Record(action models.ActivityAction, description, userID string, projectID, taskID *string) {
	activity := models.Activity{
		Action:      action,
		Description: description,
		UserID:      userID,
		ProjectID:   projectID,
		TaskID:      taskID,
	}
	if err := s.activityRepo.Create(&activity); err != nil {
		logging.Logger.WithError(err).WithField("action", action).Warn("failed to record activity")
	}
}

// List retrieves feed entries newest first with the actors resolved to user
// summaries in one batched lookup. Entries whose actor no longer exists, or
// was the anonymous sentinel, carry a nil user.
func (s *ActivityService) List(filter dto.ActivityFilter) ([]dto.ActivityResponse, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	activities, err := s.activityRepo.Find(filter.ProjectID, filter.UserID, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.UserID)
	}
	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	index := dto.SummaryIndex(users)

	responses := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		responses = append(responses, dto.NewActivityResponse(a, index[a.UserID]))
	}
	return responses, nil
}
