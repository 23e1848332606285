package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/etymquest/internal/catalog"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load("en")
	require.NoError(t, err)
	return c
}

func TestStates_Initial(t *testing.T) {
	c := loadCatalog(t)
	states := States(c, NewStats())

	require.Len(t, states, 6)
	assert.Equal(t, StateUnlocked, states[0].State)
	for _, st := range states[1:] {
		assert.Equal(t, StateLocked, st.State, st.Level.ID)
	}
}

func TestComplete_UnlocksSuccessor(t *testing.T) {
	c := loadCatalog(t)
	s := NewStats()

	tr := Complete(c, &s, "level1")
	assert.True(t, tr.Completed)
	assert.Equal(t, "level2", tr.Unlocked)
	assert.Equal(t, StateCompleted, StateOf(c, s, "level1"))
	assert.Equal(t, StateUnlocked, StateOf(c, s, "level2"))
	assert.Equal(t, StateLocked, StateOf(c, s, "level3"))
}

func TestComplete_ReplayIsIdempotent(t *testing.T) {
	c := loadCatalog(t)
	s := NewStats()
	Complete(c, &s, "level1")

	tr := Complete(c, &s, "level1")
	assert.False(t, tr.Completed)
	assert.Empty(t, tr.Unlocked)
	assert.Equal(t, []string{"level1"}, s.CompletedLevels)
}

func TestComplete_TerminalLevel(t *testing.T) {
	c := loadCatalog(t)
	s := NewStats()
	s.CompletedLevels = []string{"level1", "level2", "level3", "level4", "level5"}

	tr := Complete(c, &s, "level6")
	assert.True(t, tr.Completed)
	assert.Empty(t, tr.Unlocked)
}

func TestComplete_ReviewClearsWeakWordsOnly(t *testing.T) {
	c := loadCatalog(t)
	s := NewStats()
	s.CompletedLevels = []string{"level1"}
	s.WeakWords = WeakWords{"permit", "export", "review"}

	tr := Complete(c, &s, catalog.ReviewLevelID)
	assert.True(t, tr.ReviewCleared)
	assert.False(t, tr.Completed)
	assert.Zero(t, s.WeakWords.Len())
	assert.Equal(t, []string{"level1"}, s.CompletedLevels)
}

func TestComplete_CoreLevelLeavesCompletedSet(t *testing.T) {
	c := loadCatalog(t)
	s := NewStats()

	tr := Complete(c, &s, "core-port")
	assert.False(t, tr.Completed)
	assert.Empty(t, s.CompletedLevels)
}

func TestCheckPlayable(t *testing.T) {
	c := loadCatalog(t)

	tests := []struct {
		name    string
		setup   func(*LearnerStats)
		levelID string
		wantErr error
	}{
		{"first level", func(*LearnerStats) {}, "level1", nil},
		{"locked level", func(*LearnerStats) {}, "level2", ErrLevelLocked},
		{"unlocked by predecessor", func(s *LearnerStats) { s.CompletedLevels = []string{"level1"} }, "level2", nil},
		{"completed level replay", func(s *LearnerStats) { s.CompletedLevels = []string{"level1"} }, "level1", nil},
		{"review with two words", func(s *LearnerStats) { s.WeakWords = WeakWords{"a", "b"} }, catalog.ReviewLevelID, ErrReviewUnavailable},
		{"review with three words", func(s *LearnerStats) { s.WeakWords = WeakWords{"a", "b", "c"} }, catalog.ReviewLevelID, nil},
		{"core level", func(*LearnerStats) {}, "core-spect", nil},
		{"unknown level", func(*LearnerStats) {}, "level99", ErrUnknownLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStats()
			tt.setup(&s)
			err := CheckPlayable(c, s, tt.levelID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCompletedLevels_Monotonic(t *testing.T) {
	c := loadCatalog(t)
	s := NewStats()
	prev := []string{}

	for _, id := range []string{"level1", "level1", catalog.ReviewLevelID, "core-port", "level2", "level1", "level3"} {
		Complete(c, &s, id)
		for _, p := range prev {
			assert.Contains(t, s.CompletedLevels, p)
		}
		prev = append([]string{}, s.CompletedLevels...)
	}
	assert.Equal(t, []string{"level1", "level2", "level3"}, s.CompletedLevels)
}
