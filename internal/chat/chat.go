// Package chat implements a minimal client for an OpenAI-compatible
// chat-completions endpoint. It is the single network dependency of the
// program; both the translator and the verifier speak through it.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Message roles accepted by the chat-completions API.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one role-tagged entry in a chat request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the seam between the prompt-building collaborators and the
// remote service. Tests substitute a stub.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Client talks to a chat-completions endpoint with bearer authentication.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// New creates a chat client. Empty baseURL and model fall back to the
// OpenAI defaults; a non-positive timeout falls back to 120s.
func New(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-4o"
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Complete sends the messages and returns the first completion's text
// content, unmodified.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("API key required")
	}

	chatReq := map[string]interface{}{
		"model":    c.model,
		"messages": messages,
	}

	jsonData, err := json.Marshal(chatReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/chat/completions", c.baseURL), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return "", fmt.Errorf("API returned status %d: %v", resp.StatusCode, errResp)
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return chatResp.Choices[0].Message.Content, nil
}
