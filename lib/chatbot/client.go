package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client represents a client for the external chatbot webhook
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new chatbot client for the given webhook URL
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:5005/webhooks/rest/webhook"
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type webhookRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

type webhookMessage struct {
	RecipientID string `json:"recipient_id"`
	Text        string `json:"text"`
}

// Send forwards a message to the chatbot and returns the reply text. The
// webhook answers with a list of messages, their texts are joined into one
// reply. An empty list yields an empty reply, not an error.
func (c *Client) Send(ctx context.Context, sender, message string) (string, error) {
	body, err := json.Marshal(webhookRequest{Sender: sender, Message: message})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chatbot returned status %d", resp.StatusCode)
	}

	var messages []webhookMessage
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		return "", fmt.Errorf("failed to decode chatbot response: %v", err)
	}

	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		if m.Text != "" {
			parts = append(parts, m.Text)
		}
	}
	return strings.Join(parts, "\n"), nil
}
