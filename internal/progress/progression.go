package progress

import (
	"errors"
	"fmt"

	"github.com/abhisek/etymquest/internal/catalog"
)

var (
	ErrUnknownLevel      = errors.New("unknown level")
	ErrLevelLocked       = errors.New("level is locked")
	ErrReviewUnavailable = errors.New("review needs more weak words")
)

// LevelState is a path level's position in the unlock lifecycle.
type LevelState int

const (
	StateLocked LevelState = iota
	StateUnlocked
	StateCompleted
)

// String returns a lowercase label for the state.
func (s LevelState) String() string {
	switch s {
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Icon returns a single-glyph marker for the state.
func (s LevelState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateUnlocked:
		return "▶"
	case StateCompleted:
		return "✓"
	default:
		return "?"
	}
}

// LevelStatus pairs a path level with its current state.
type LevelStatus struct {
	Level catalog.Level
	State LevelState
}

// StateOf derives a path level's state from the completed set. The first level
// is never locked; any other level unlocks once its predecessor is completed.
func StateOf(c *catalog.Catalog, s LearnerStats, levelID string) LevelState {
	if s.HasCompleted(levelID) {
		return StateCompleted
	}
	if levelID == c.FirstLevel().ID {
		return StateUnlocked
	}
	if prev, ok := c.Predecessor(levelID); ok && s.HasCompleted(prev) {
		return StateUnlocked
	}
	return StateLocked
}

// States returns every path level with its state, in path order.
func States(c *catalog.Catalog, s LearnerStats) []LevelStatus {
	levels := c.Levels()
	out := make([]LevelStatus, len(levels))
	for i, l := range levels {
		out[i] = LevelStatus{Level: l, State: StateOf(c, s, l.ID)}
	}
	return out
}

// CheckPlayable reports why levelID cannot be started, or nil if it can.
// Core levels are always playable; review needs ReviewThreshold weak words.
func CheckPlayable(c *catalog.Catalog, s LearnerStats, levelID string) error {
	switch {
	case levelID == catalog.ReviewLevelID:
		if !s.WeakWords.ReviewAvailable() {
			return fmt.Errorf("%w: have %d, need %d", ErrReviewUnavailable, s.WeakWords.Len(), ReviewThreshold)
		}
		return nil
	case c.IsPathLevel(levelID):
		if StateOf(c, s, levelID) == StateLocked {
			return fmt.Errorf("%w: %s", ErrLevelLocked, levelID)
		}
		return nil
	default:
		if _, ok := c.Level(levelID); ok {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrUnknownLevel, levelID)
	}
}

// Transition records what completing a level changed.
type Transition struct {
	LevelID       string
	Completed     bool   // newly added to the completed set
	Unlocked      string // successor that moved from locked to unlocked
	ReviewCleared bool
}

// Complete applies a level completion to s. Replaying a completed level is a
// no-op, review only clears the weak words, and core levels leave the
// completed set untouched.
func Complete(c *catalog.Catalog, s *LearnerStats, levelID string) Transition {
	t := Transition{LevelID: levelID}
	switch {
	case levelID == catalog.ReviewLevelID:
		s.WeakWords.Clear()
		t.ReviewCleared = true
	case c.IsPathLevel(levelID):
		l, _ := c.Level(levelID)
		var before LevelState
		if l.Unlocks != "" {
			before = StateOf(c, *s, l.Unlocks)
		}
		t.Completed = s.MarkCompleted(levelID)
		if l.Unlocks != "" && before == StateLocked && StateOf(c, *s, l.Unlocks) == StateUnlocked {
			t.Unlocked = l.Unlocks
		}
	}
	return t
}
