// Package engine owns the learner's progress for one profile. It serves
// quizzes, applies answer and puzzle outcomes to the stats, re-runs the
// achievement pass after every change, persists the result and notifies
// subscribers with discrete events.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/etymquest/internal/achievements"
	"github.com/abhisek/etymquest/internal/catalog"
	"github.com/abhisek/etymquest/internal/progress"
	"github.com/abhisek/etymquest/internal/quiz"
	"github.com/abhisek/etymquest/internal/store"
)

// DefaultProfile is the persistence key used when none is configured.
const DefaultProfile = "etymology-app-stats-v12"

var (
	// ErrNoLesson is returned by lesson operations when no level is being played.
	ErrNoLesson = errors.New("no lesson in progress")

	// ErrPuzzleSolved is returned when today's puzzle was already solved in
	// this session.
	ErrPuzzleSolved = errors.New("today's puzzle is already solved")

	// ErrInvariant is returned when an Update mutator breaks a stats invariant.
	// The mutation is discarded.
	ErrInvariant = errors.New("stats invariant violated")

	// ErrClosed is returned for mutations after Close.
	ErrClosed = errors.New("engine closed")
)

// Persister stores learner stats. persist.Adapter satisfies it.
type Persister interface {
	Get(ctx context.Context, key string, def progress.LearnerStats) progress.LearnerStats
	Set(key string, s progress.LearnerStats)
	Delete(ctx context.Context, key string) error
}

// Options configures an Engine.
type Options struct {
	Catalog   *catalog.Catalog
	Persister Persister

	// Events, when set, receives every engine event for the activity log.
	Events store.EventRepo

	// Key is the persistence key. Defaults to DefaultProfile.
	Key string

	// Achievements overrides the built-in definitions.
	Achievements []achievements.Definition

	// Rand drives distractor sampling and shuffles. Nil seeds from the clock.
	Rand *rand.Rand

	// Now supplies the current time. Defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// Engine is the single owner of a learner's stats. All methods are safe for
// concurrent use; mutations are serialized.
type Engine struct {
	catalog   *catalog.Catalog
	persister Persister
	key       string
	evaluator *achievements.Evaluator
	gen       *quiz.Generator
	now       func() time.Time
	logger    *slog.Logger
	sessionID string
	recorder  *recorder

	mu           sync.Mutex
	stats        progress.LearnerStats
	started      bool
	lesson       *quiz.Lesson
	puzzle       *dailyPuzzle
	puzzleSolved progress.Date
	closed       bool

	subMu   sync.Mutex
	subs    map[int]Listener
	nextSub int
}

// New loads the stats stored under the configured key and returns an engine
// over them. Progress entries the catalog does not define are dropped and
// the cleaned stats are written back.
func New(ctx context.Context, opts Options) (*Engine, error) {
	if opts.Catalog == nil {
		return nil, errors.New("engine: catalog is required")
	}
	if opts.Persister == nil {
		return nil, errors.New("engine: persister is required")
	}
	if opts.Key == "" {
		opts.Key = DefaultProfile
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Engine{
		catalog:   opts.Catalog,
		persister: opts.Persister,
		key:       opts.Key,
		evaluator: achievements.NewEvaluator(opts.Catalog, opts.Achievements),
		gen:       quiz.NewGenerator(opts.Rand),
		now:       opts.Now,
		logger:    opts.Logger.With(slog.String("profile", opts.Key)),
		sessionID: uuid.New().String(),
		subs:      make(map[int]Listener),
	}
	if opts.Events != nil {
		e.recorder = newRecorder(opts.Events, e.logger)
	}

	stats := e.persister.Get(ctx, e.key, progress.NewStats())
	if stats.Sanitize(e.catalog.IsPathLevel, e.catalog.Has) {
		e.logger.Info("dropped progress entries unknown to the catalog",
			slog.String("locale", e.catalog.Locale()))
		e.persister.Set(e.key, stats.Clone())
	}
	e.stats = stats
	return e, nil
}

// SessionID identifies this engine instance in the activity log.
func (e *Engine) SessionID() string { return e.sessionID }

// Catalog returns the content the engine serves.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Stats returns a copy of the current stats.
func (e *Engine) Stats() progress.LearnerStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats.Clone()
}

// Subscribe registers fn for every event committed after the call and
// returns a function that removes it.
func (e *Engine) Subscribe(fn Listener) func() {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	return func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		delete(e.subs, id)
	}
}

// StartSession runs the daily streak rollover and the achievement pass that
// follows it. Only the first call per session has any effect; operations
// that serve content start the session implicitly.
func (e *Engine) StartSession() ([]Event, error) {
	e.mu.Lock()
	events, err := e.startLocked()
	e.mu.Unlock()
	e.notify(events)
	return events, err
}

func (e *Engine) startLocked() ([]Event, error) {
	if e.started {
		return nil, nil
	}
	today := progress.DateOf(e.now())
	events, err := e.mutateLocked(func(s *progress.LearnerStats) ([]Event, error) {
		*s = progress.Rollover(*s, today)
		return []Event{{Kind: EventSessionStarted, Streak: s.Streak}}, nil
	})
	if err != nil {
		return nil, err
	}
	e.started = true
	e.logger.Debug("session started", slog.String("session_id", e.sessionID), slog.String("date", today.String()))
	return events, nil
}

// Update applies mutator to a copy of the stats and commits it if the
// mutator succeeds and the result keeps the stats invariants: completed
// levels and achievements never shrink, counters stay non-negative, and
// only catalog levels and words are referenced.
func (e *Engine) Update(mutator func(*progress.LearnerStats) error) error {
	e.mu.Lock()
	before := e.stats.Clone()
	events, err := e.mutateLocked(func(s *progress.LearnerStats) ([]Event, error) {
		if err := mutator(s); err != nil {
			return nil, err
		}
		if err := e.checkInvariants(before, *s); err != nil {
			return nil, err
		}
		return []Event{{Kind: EventStatsUpdated}}, nil
	})
	e.mu.Unlock()
	e.notify(events)
	return err
}

func (e *Engine) checkInvariants(before, after progress.LearnerStats) error {
	for _, id := range before.CompletedLevels {
		if !after.HasCompleted(id) {
			return fmt.Errorf("%w: completed level %q removed", ErrInvariant, id)
		}
	}
	for _, id := range before.UnlockedAchievements {
		if !after.HasAchievement(id) {
			return fmt.Errorf("%w: achievement %q re-locked", ErrInvariant, id)
		}
	}
	for _, id := range after.CompletedLevels {
		if !e.catalog.IsPathLevel(id) {
			return fmt.Errorf("%w: unknown level %q", ErrInvariant, id)
		}
	}
	seen := make(map[string]bool, len(after.WeakWords))
	for _, w := range after.WeakWords {
		if !e.catalog.Has(w) {
			return fmt.Errorf("%w: weak word %q not in catalog", ErrInvariant, w)
		}
		if seen[w] {
			return fmt.Errorf("%w: weak word %q duplicated", ErrInvariant, w)
		}
		seen[w] = true
	}
	if after.DailyScore < 0 || after.Streak < 0 || after.PuzzlesSolved < 0 {
		return fmt.Errorf("%w: negative counter", ErrInvariant)
	}
	if after.TotalScore < before.TotalScore {
		return fmt.Errorf("%w: total score decreased", ErrInvariant)
	}
	return nil
}

// Reset deletes the stored stats and starts over from zero progress. The
// next content request starts a fresh session.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if err := e.persister.Delete(ctx, e.key); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("reset stats: %w", err)
	}
	e.stats = progress.NewStats()
	e.started = false
	e.lesson = nil
	e.puzzleSolved = progress.Date{}
	events := e.stamp([]Event{{Kind: EventStatsReset}})
	e.record(events)
	e.mu.Unlock()

	e.logger.Info("learner stats reset")
	e.notify(events)
	return nil
}

// Close stops the activity-log writer after queued events are written.
// The persister is owned by the caller and is left open.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()
	if e.recorder != nil {
		e.recorder.close()
	}
}

// mutateLocked runs fn on a copy of the stats, then the achievement pass,
// and commits only if fn succeeds. Callers hold e.mu and notify afterwards.
func (e *Engine) mutateLocked(fn func(*progress.LearnerStats) ([]Event, error)) ([]Event, error) {
	if e.closed {
		return nil, ErrClosed
	}
	next := e.stats.Clone()
	events, err := fn(&next)
	if err != nil {
		return nil, err
	}
	for _, id := range e.evaluator.Apply(&next) {
		events = append(events, Event{Kind: EventAchievementUnlocked, AchievementID: id})
		e.logger.Info("achievement unlocked", slog.String("achievement", id))
	}

	e.stats = next
	e.persister.Set(e.key, next.Clone())

	events = e.stamp(events)
	e.record(events)
	return events, nil
}

func (e *Engine) stamp(events []Event) []Event {
	now := e.now()
	for i := range events {
		events[i].SessionID = e.sessionID
		events[i].Time = now
	}
	return events
}

func (e *Engine) record(events []Event) {
	if e.recorder != nil && len(events) > 0 {
		e.recorder.record(events)
	}
}

func (e *Engine) notify(events []Event) {
	if len(events) == 0 {
		return
	}
	e.subMu.Lock()
	ids := make([]int, 0, len(e.subs))
	for id := range e.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	subs := make([]Listener, 0, len(ids))
	for _, id := range ids {
		subs = append(subs, e.subs[id])
	}
	e.subMu.Unlock()

	for _, ev := range events {
		for _, fn := range subs {
			fn(ev)
		}
	}
}
