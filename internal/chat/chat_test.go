package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Complete_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "你好，世界。"}},
			},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := &Client{
		apiKey:  "test-key",
		baseURL: server.URL,
		model:   "gpt-4o",
		client:  server.Client(),
	}

	got, err := c.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "translate"},
		{Role: RoleUser, Content: "Hello world."},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "你好，世界。" {
		t.Errorf("expected '你好，世界。', got %q", got)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("expected '/chat/completions', got %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if gotReq["model"] != "gpt-4o" {
		t.Errorf("expected model in request body, got %v", gotReq["model"])
	}
}

func TestClient_Complete_NoAPIKey(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	c := &Client{
		apiKey:  "",
		baseURL: server.URL,
		model:   "gpt-4o",
		client:  server.Client(),
	}

	_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if err == nil {
		t.Error("expected error when API key missing")
	}
	if calls != 0 {
		t.Errorf("expected no request without API key, got %d", calls)
	}
}

func TestClient_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]string{"error": "rate limited"})
	}))
	defer server.Close()

	c := &Client{
		apiKey:  "test-key",
		baseURL: server.URL,
		model:   "gpt-4o",
		client:  server.Client(),
	}

	_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if err == nil {
		t.Error("expected error for non-OK status")
	}
}

func TestClient_Complete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	c := &Client{
		apiKey:  "test-key",
		baseURL: server.URL,
		model:   "gpt-4o",
		client:  server.Client(),
	}

	_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	if err == nil {
		t.Error("expected error for empty choices")
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New("test-key", "", "", 0)

	if c.baseURL != "https://api.openai.com/v1" {
		t.Errorf("expected default base URL, got %q", c.baseURL)
	}
	if c.Model() != "gpt-4o" {
		t.Errorf("expected default model, got %q", c.Model())
	}
	if c.client.Timeout != 120*time.Second {
		t.Errorf("expected 120s timeout, got %v", c.client.Timeout)
	}
}
