package services

import (
	"fmt"

	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/repositories"
)

// feedbackPreviewLimit is the number of characters of feedback content kept
// in the activity description before truncation.
const feedbackPreviewLimit = 100

// FeedbackService records user feedback as anonymous activity entries
type FeedbackService struct {
	activityRepo *repositories.ActivityRepository
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService() *FeedbackService {
	return &FeedbackService{
		activityRepo: repositories.NewActivityRepository(),
	}
}

// Submit stores feedback in the activity feed under the anonymous sentinel
// user. The response preview matches the stored description exactly. Unlike
// other feed writes, a failed append fails the request, the feed row is the
// only record of the submission.
func (s *FeedbackService) Submit(req dto.FeedbackRequest) (dto.FeedbackResponse, error) {
	content := req.Content
	if runes := []rune(content); len(runes) > feedbackPreviewLimit {
		content = string(runes[:feedbackPreviewLimit]) + "..."
	}
	description := fmt.Sprintf("[%s/%s] %s", req.Category, req.Type, content)

	activity := models.Activity{
		Action:      models.ActionSubmitFeedback,
		Description: description,
		UserID:      models.AnonymousUserID,
	}
	if err := s.activityRepo.Create(&activity); err != nil {
		return dto.FeedbackResponse{}, err
	}

	return dto.FeedbackResponse{Preview: description}, nil
}
