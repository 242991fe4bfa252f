package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/apperrors"
	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/policy"
)

func TestChatbotSendRequiresActor(t *testing.T) {
	svc := NewChatbotService()

	_, err := svc.Send(context.Background(), nil, dto.ChatbotRequest{Message: "hi"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestChatbotSendForwardsReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"recipient_id":"u1","text":"pong"}]`))
	}))
	defer server.Close()
	t.Setenv("CHATBOT_API_URL", server.URL)

	svc := NewChatbotService()
	actor := &policy.Actor{ID: "u1", Role: models.RoleMember}

	resp, err := svc.Send(context.Background(), actor, dto.ChatbotRequest{Message: "ping"})
	require.NoError(t, err)
	assert.Equal(t, "pong", resp.Reply)
}

func TestChatbotBreakerOpensAfterFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Setenv("CHATBOT_API_URL", server.URL)

	svc := NewChatbotService()
	actor := &policy.Actor{ID: "u1", Role: models.RoleMember}

	for i := 0; i < 4; i++ {
		_, err := svc.Send(context.Background(), actor, dto.ChatbotRequest{Message: "ping"})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	}

	// The breaker is open now, calls fail without reaching the bot
	server.Close()
	_, err := svc.Send(context.Background(), actor, dto.ChatbotRequest{Message: "ping"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
}
