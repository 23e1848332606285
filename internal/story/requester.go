package story

import (
	"context"
	"sync"
	"time"
)

// Outcome is the result of one story request.
type Outcome struct {
	Prompt string
	Text   string
	Err    error
}

// Requester runs story generations in the background. Only the latest
// request is delivered; a newer request supersedes any still in flight.
type Requester struct {
	gen     Generator
	timeout time.Duration

	mu     sync.Mutex
	token  uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRequester returns a Requester over gen. A non-positive timeout uses
// DefaultTimeout.
func NewRequester(gen Generator, timeout time.Duration) *Requester {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Requester{gen: gen, timeout: timeout}
}

// Request starts generating a story for prompt and returns immediately.
// deliver runs on a background goroutine, and only if no later Request was
// made in the meantime. deliver must not call Request.
func (r *Requester) Request(ctx context.Context, prompt string, deliver func(Outcome)) {
	r.mu.Lock()
	r.token++
	token := r.token
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	r.cancel = cancel
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()

		text, err := r.gen.GenerateStory(ctx, prompt)

		r.mu.Lock()
		defer r.mu.Unlock()
		if token != r.token {
			return
		}
		deliver(Outcome{Prompt: prompt, Text: text, Err: err})
	}()
}

// Wait blocks until every started request has finished.
func (r *Requester) Wait() {
	r.wg.Wait()
}
