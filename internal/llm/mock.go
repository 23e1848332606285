package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Text  string
	Usage Usage
	Err   error
}

// MockProvider is a deterministic Provider for testing and offline use.
// It returns canned responses in FIFO order and records all requests. With
// an empty queue it echoes a fixed story so the proxy works without keys.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
	// Strict makes an empty queue an error instead of echoing.
	Strict bool
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// mockStory is served when no canned response is queued.
const mockStory = "Once upon a time, a curious student found that every long word was built from small, meaningful pieces."

// Generate returns the next canned response. The Raw document uses the
// Gemini response shape.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.Strict:
		return nil, &ErrProviderUnavailable{}
	default:
		resp = MockResponse{Text: mockStory}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}
	if resp.Text == "" {
		return nil, &EmptyResponseError{Raw: json.RawMessage(`{"promptFeedback":{"blockReason":"SAFETY"},"modelVersion":"mock"}`)}
	}

	raw, err := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": resp.Text}},
				},
				"finishReason": "STOP",
			},
		},
		"modelVersion": "mock",
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:       resp.Text,
		Raw:        raw,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
