package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrEmptyResponse indicates the provider answered without any candidate text.
var ErrEmptyResponse = errors.New("LLM response has no candidate text")

// EmptyResponseError is returned when the provider answered successfully
// but the document holds no text, for example a safety-blocked prompt.
// Raw is the provider-native document. It matches ErrEmptyResponse.
type EmptyResponseError struct {
	Raw json.RawMessage
}

func (e *EmptyResponseError) Error() string { return ErrEmptyResponse.Error() }

func (e *EmptyResponseError) Is(target error) bool { return target == ErrEmptyResponse }

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider failed or could not be
// reached. StatusCode is the upstream HTTP status, or 0 when the request
// never got a response.
type ErrProviderUnavailable struct {
	StatusCode int
	Err        error
}

func (e *ErrProviderUnavailable) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("LLM provider unavailable (HTTP %d): %v", e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	default:
		return "LLM provider unavailable"
	}
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// StatusCode reports the upstream HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return http.StatusTooManyRequests, true
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) && unavail.StatusCode != 0 {
		return unavail.StatusCode, true
	}
	return 0, false
}

// classifyStatus maps an upstream HTTP status to the package's error types.
func classifyStatus(code int, err error) error {
	if code == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{StatusCode: code, Err: err}
}
