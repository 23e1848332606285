package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when a key or event does not exist.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Kind   string // exact kind match ("" = any)
	Limit  int    // max results (0 = unlimited)
	After  int64  // sequence > After
	Before int64  // sequence < Before
}

// Event is one append-only record in the activity log.
type Event struct {
	ID        int
	Sequence  int64
	Kind      string
	SessionID string
	Payload   json.RawMessage
	Timestamp time.Time
}

// KVRepo stores opaque documents under string keys.
type KVRepo interface {
	// Get returns the stored value, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put inserts or replaces the value for key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// EventKindLLMRequest is the kind of events appended by AppendLLMRequest.
const EventKindLLMRequest = "llm_request"

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	Purpose      string `json:"purpose"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	LatencyMs    int64  `json:"latency_ms"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message,omitempty"`
	RequestBody  string `json:"request_body,omitempty"`
	ResponseBody string `json:"response_body,omitempty"`
}

// EventRepo provides append and query access to the activity log.
type EventRepo interface {
	// Append records an event and returns it with ID, Sequence and Timestamp set.
	Append(ctx context.Context, e Event) (Event, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// Query returns events newest first.
	Query(ctx context.Context, opts QueryOpts) ([]Event, error)

	// Get returns a single event by ID, or ErrNotFound.
	Get(ctx context.Context, id int) (Event, error)
}
