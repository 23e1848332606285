package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/etymquest/internal/progress"
	"github.com/abhisek/etymquest/internal/store"
)

// writeTimeout bounds a single background write.
const writeTimeout = 5 * time.Second

// PersistenceError wraps a failed read or write of learner stats.
type PersistenceError struct {
	Op  string // "get", "set" or "delete"
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Adapter stores LearnerStats documents in a KVRepo. Reads fall back to a
// default on any problem; writes are queued and applied in the background
// by a single writer, so the caller never waits on the database.
type Adapter struct {
	repo   store.KVRepo
	logger *slog.Logger

	mu       sync.Mutex
	pending  map[string][]byte
	order    []string
	inflight map[string][]byte

	wake      chan struct{}
	flushReq  chan chan struct{}
	closing   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New creates an Adapter and starts its writer goroutine. A nil logger
// discards log output.
func New(repo store.KVRepo, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &Adapter{
		repo:     repo,
		logger:   logger,
		pending:  make(map[string][]byte),
		wake:     make(chan struct{}, 1),
		flushReq: make(chan chan struct{}),
		closing:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go a.writeLoop()
	return a
}

// Get returns the stats stored under key. It returns def when the key is
// absent, the stored document is corrupt, or the read fails; the last two
// are logged. A queued but unwritten value is returned in preference to the
// stored one.
func (a *Adapter) Get(ctx context.Context, key string, def progress.LearnerStats) progress.LearnerStats {
	a.mu.Lock()
	raw, queued := a.pending[key]
	if !queued {
		raw, queued = a.inflight[key]
	}
	a.mu.Unlock()

	if !queued {
		var err error
		raw, err = a.repo.Get(ctx, key)
		if errors.Is(err, store.ErrNotFound) {
			return def
		}
		if err != nil {
			a.logger.Warn("reading learner stats failed; using defaults",
				slog.Any("error", &PersistenceError{Op: "get", Key: key, Err: err}))
			return def
		}
	}

	if err := validateDocument(raw); err != nil {
		a.logger.Warn("stored learner stats are corrupt; using defaults",
			slog.String("key", key), slog.Any("error", err))
		return def
	}
	var s progress.LearnerStats
	if err := json.Unmarshal(raw, &s); err != nil {
		a.logger.Warn("stored learner stats are corrupt; using defaults",
			slog.String("key", key), slog.Any("error", err))
		return def
	}
	if s.UnlockedAchievements == nil {
		s.UnlockedAchievements = []string{}
	}
	if s.CompletedLevels == nil {
		s.CompletedLevels = []string{}
	}
	if s.WeakWords == nil {
		s.WeakWords = progress.WeakWords{}
	}
	return s
}

// Set queues stats for writing under key and returns immediately. Writes to
// the same key are applied in the order they were issued; a newer write may
// replace an older one that has not reached the database yet.
func (a *Adapter) Set(key string, s progress.LearnerStats) {
	raw, err := json.Marshal(s)
	if err != nil {
		a.logger.Error("encoding learner stats failed",
			slog.Any("error", &PersistenceError{Op: "set", Key: key, Err: err}))
		return
	}

	select {
	case <-a.closing:
		a.logger.Warn("persistence closed; dropping write", slog.String("key", key))
		return
	default:
	}

	a.mu.Lock()
	if _, ok := a.pending[key]; !ok {
		a.order = append(a.order, key)
	}
	a.pending[key] = raw
	a.mu.Unlock()

	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// Delete removes key once queued writes have been applied.
func (a *Adapter) Delete(ctx context.Context, key string) error {
	if err := a.Flush(ctx); err != nil {
		return err
	}
	if err := a.repo.Delete(ctx, key); err != nil {
		return &PersistenceError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// Flush blocks until every write queued before the call has been attempted.
func (a *Adapter) Flush(ctx context.Context) error {
	ack := make(chan struct{})
	select {
	case a.flushReq <- ack:
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains queued writes and stops the writer.
func (a *Adapter) Close() {
	a.closeOnce.Do(func() { close(a.closing) })
	<-a.done
}

func (a *Adapter) writeLoop() {
	defer close(a.done)
	for {
		select {
		case <-a.wake:
			a.drain()
		case ack := <-a.flushReq:
			a.drain()
			close(ack)
		case <-a.closing:
			a.drain()
			return
		}
	}
}

func (a *Adapter) drain() {
	a.mu.Lock()
	pending, order := a.pending, a.order
	a.pending = make(map[string][]byte)
	a.order = nil
	a.inflight = pending
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.inflight = nil
		a.mu.Unlock()
	}()

	for _, key := range order {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := a.repo.Put(ctx, key, pending[key])
		cancel()
		if err != nil {
			a.logger.Warn("writing learner stats failed",
				slog.Any("error", &PersistenceError{Op: "set", Key: key, Err: err}))
			continue
		}
		a.logger.Debug("learner stats saved", slog.String("key", key))
	}
}
