package services

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"github.com/taskhive/taskhive/apperrors"
	"github.com/taskhive/taskhive/config"
	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/lib/chatbot"
	"github.com/taskhive/taskhive/logging"
	"github.com/taskhive/taskhive/policy"
)

// ChatbotService forwards messages to the external chatbot behind a circuit
// breaker so a dead bot does not tie up request handlers.
type ChatbotService struct {
	client  *chatbot.Client
	breaker *gobreaker.CircuitBreaker
}

// NewChatbotService creates a new chatbot service instance
func NewChatbotService() *ChatbotService {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "chatbot",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Circuit breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
	return &ChatbotService{
		client:  chatbot.NewClient(config.ChatbotURL()),
		breaker: breaker,
	}
}

// Send forwards the actor's message and returns the bot reply. Transport
// failures and an open breaker both surface as internal errors.
func (s *ChatbotService) Send(ctx context.Context, actor *policy.Actor, req dto.ChatbotRequest) (dto.ChatbotResponse, error) {
	if actor == nil {
		return dto.ChatbotResponse{}, apperrors.Unauthorized("authentication required")
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.Send(ctx, actor.ID, req.Message)
	})
	if err != nil {
		return dto.ChatbotResponse{}, apperrors.Internal("chatbot service unavailable", err)
	}

	return dto.ChatbotResponse{Reply: result.(string)}, nil
}
