package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{
		client: &client,
		model:  DefaultAnthropicModel,
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": "A transporter carried the word across."},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage": map[string]any{
				"input_tokens":  50,
				"output_tokens": 30,
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "Write short stories.",
		Messages:  []Message{{Role: RoleUser, Content: "Use: transport"}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "A transporter carried the word across." {
		t.Fatalf("unexpected text %q", resp.Text)
	}
	if !strings.Contains(string(resp.Raw), `"stop_reason"`) {
		t.Fatalf("raw document lacks stop_reason: %s", resp.Raw)
	}
	if resp.Usage.InputTokens != 50 {
		t.Fatalf("expected 50 input tokens, got %d", resp.Usage.InputTokens)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
}

func TestAnthropicProvider_UpstreamStatus(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		errType   string
		rateLimit bool
	}{
		{"rate limited", http.StatusTooManyRequests, "rate_limit_error", true},
		{"bad request", http.StatusBadRequest, "invalid_request_error", false},
		{"server error", http.StatusInternalServerError, "api_error", false},
		{"overloaded", 529, "overloaded_error", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				json.NewEncoder(w).Encode(map[string]any{
					"type":  "error",
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

func TestAnthropicProvider_ModelID(t *testing.T) {
	p, err := NewAnthropicProvider(ProviderConfig{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != DefaultAnthropicModel {
		t.Fatalf("expected %q, got %q", DefaultAnthropicModel, p.ModelID())
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-5-20250929"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-opus-4-5", "claude-opus-4-5"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, anthropicModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
