package engine

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/etymquest/internal/store"
)

// EventKind names something that happened to the learner's progress.
type EventKind string

const (
	EventSessionStarted      EventKind = "session_started"
	EventCorrect             EventKind = "correct"
	EventIncorrect           EventKind = "incorrect"
	EventLevelCompleted      EventKind = "level_completed"
	EventLevelUnlocked       EventKind = "level_unlocked"
	EventAchievementUnlocked EventKind = "achievement_unlocked"
	EventReviewCleared       EventKind = "review_cleared"
	EventPuzzleSolved        EventKind = "puzzle_solved"
	EventStatsUpdated        EventKind = "stats_updated"
	EventStatsReset          EventKind = "stats_reset"
)

// Event is delivered to subscribers after the mutation it describes has been
// committed. Only the fields relevant to Kind are set.
type Event struct {
	Kind          EventKind `json:"kind"`
	SessionID     string    `json:"session_id"`
	LevelID       string    `json:"level_id,omitempty"`
	Word          string    `json:"word,omitempty"`
	Selected      string    `json:"selected,omitempty"`
	AchievementID string    `json:"achievement_id,omitempty"`
	Streak        int       `json:"streak,omitempty"`
	Time          time.Time `json:"time"`
}

// Listener receives engine events. It is called without the engine lock held
// and may call back into the engine.
type Listener func(Event)

// recordQueueSize bounds events waiting to be written to the activity log.
const recordQueueSize = 64

// recorder appends engine events to the activity log from a background
// goroutine so answering never waits on the database.
type recorder struct {
	repo    store.EventRepo
	logger  *slog.Logger
	pending chan Event
	wg      sync.WaitGroup
	once    sync.Once
}

func newRecorder(repo store.EventRepo, logger *slog.Logger) *recorder {
	r := &recorder{
		repo:    repo,
		logger:  logger,
		pending: make(chan Event, recordQueueSize),
	}
	r.wg.Add(1)
	go r.processLoop()
	return r
}

func (r *recorder) record(events []Event) {
	for _, e := range events {
		select {
		case r.pending <- e:
		default:
			// Queue full; the activity log is informational only.
			r.logger.Debug("activity log queue full; dropping event", slog.String("kind", string(e.Kind)))
		}
	}
}

func (r *recorder) processLoop() {
	defer r.wg.Done()
	for e := range r.pending {
		payload, err := json.Marshal(e)
		if err != nil {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, err = r.repo.Append(ctx, store.Event{
			Kind:      string(e.Kind),
			SessionID: e.SessionID,
			Payload:   payload,
		})
		cancel()
		if err != nil {
			r.logger.Warn("recording event failed", slog.String("kind", string(e.Kind)), slog.Any("error", err))
		}
	}
}

// close stops accepting events and waits for queued ones to be written.
func (r *recorder) close() {
	r.once.Do(func() { close(r.pending) })
	r.wg.Wait()
}
