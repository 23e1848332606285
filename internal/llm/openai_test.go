package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	client := openai.NewClientWithConfig(config)

	return &OpenAIProvider{
		client: client,
		model:  "gpt-4o-mini",
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": "An inspector looked into the old port.",
					},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     40,
				"completion_tokens": 25,
				"total_tokens":      65,
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "Write short stories.",
		Messages:  []Message{{Role: RoleUser, Content: "Use: inspect"}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "An inspector looked into the old port." {
		t.Fatalf("unexpected text %q", resp.Text)
	}
	if !strings.Contains(string(resp.Raw), `"choices"`) {
		t.Fatalf("raw document lacks choices: %s", resp.Raw)
	}
	if resp.Usage.InputTokens != 40 {
		t.Fatalf("expected 40 input tokens, got %d", resp.Usage.InputTokens)
	}
	if resp.Usage.OutputTokens != 25 {
		t.Fatalf("expected 25 output tokens, got %d", resp.Usage.OutputTokens)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
}

// The story proxy relays the upstream status, so every failure must carry it.
func TestOpenAIProvider_UpstreamStatus(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		errType   string
		rateLimit bool
	}{
		{"rate limited", http.StatusTooManyRequests, "tokens", true},
		{"bad request", http.StatusBadRequest, "invalid_request_error", false},
		{"server error", http.StatusInternalServerError, "server_error", false},
		{"overloaded", http.StatusServiceUnavailable, "server_error", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"type": tc.errType, "message": tc.name},
				})
			})
			_, err := p.Generate(context.Background(), UserPrompt("test"))
			if err == nil {
				t.Fatal("expected error")
			}
			var rl *ErrRateLimit
			if got := errors.As(err, &rl); got != tc.rateLimit {
				t.Fatalf("errors.As(ErrRateLimit) = %v, want %v (%v)", got, tc.rateLimit, err)
			}
			code, ok := StatusCode(err)
			if !ok || code != tc.status {
				t.Fatalf("StatusCode = %d, %v; want %d", code, ok, tc.status)
			}
		})
	}
}

func TestOpenAIProvider_EmptyContent(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-empty",
			"object":  "chat.completion",
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{},
		})
	})
	_, err := p.Generate(context.Background(), UserPrompt("test"))
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
	var empty *EmptyResponseError
	if !errors.As(err, &empty) || !strings.Contains(string(empty.Raw), `"chatcmpl-empty"`) {
		t.Fatalf("expected the upstream document on the error, got %v", err)
	}
}

func TestOpenAIProvider_ModelID(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o-mini"}
	if p.ModelID() != "gpt-4o-mini" {
		t.Fatalf("expected 'gpt-4o-mini', got %q", p.ModelID())
	}
}

func TestOpenAIProvider_BaseURLOverride(t *testing.T) {
	// Verify that the provider can be created with a custom BaseURL.
	cfg := ProviderConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: defaultOpenRouterBaseURL,
	}
	p, err := NewOpenAIProvider(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4o" {
		t.Fatalf("expected 'gpt-4o', got %q", p.ModelID())
	}
}
