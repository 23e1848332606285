package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/etymquest/internal/catalog"
	"github.com/abhisek/etymquest/internal/progress"
)

func newEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	c, err := catalog.Load("ja")
	require.NoError(t, err)
	return NewEvaluator(c, nil)
}

func TestEvaluate(t *testing.T) {
	e := newEvaluator(t)

	tests := []struct {
		name  string
		setup func(*progress.LearnerStats)
		want  []string
	}{
		{"fresh learner", func(*progress.LearnerStats) {}, nil},
		{"first correct answer", func(s *progress.LearnerStats) { s.TotalScore = 1 }, []string{"first_step"}},
		{"streak of two", func(s *progress.LearnerStats) { s.Streak = 2 }, nil},
		{"streak of three", func(s *progress.LearnerStats) { s.Streak = 3 }, []string{"streak_3"}},
		{"level1 cleared", func(s *progress.LearnerStats) { s.CompletedLevels = []string{"level1"} }, []string{"level1_clear"}},
		{
			"all levels cleared",
			func(s *progress.LearnerStats) {
				s.TotalScore = 18
				s.CompletedLevels = []string{"level1", "level2", "level3", "level4", "level5", "level6"}
			},
			[]string{"first_step", "level1_clear", "level4_clear", "word_master"},
		},
		{
			"already unlocked is skipped",
			func(s *progress.LearnerStats) {
				s.TotalScore = 5
				s.UnlockedAchievements = []string{"first_step"}
			},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := progress.NewStats()
			tt.setup(&s)
			assert.Equal(t, tt.want, e.Evaluate(s))
		})
	}
}

func TestApply_NeverRelocks(t *testing.T) {
	e := newEvaluator(t)
	s := progress.NewStats()
	s.Streak = 3
	s.TotalScore = 1

	assert.ElementsMatch(t, []string{"first_step", "streak_3"}, e.Apply(&s))

	// A broken streak must not take the badge back.
	s.Streak = 1
	assert.Empty(t, e.Apply(&s))
	assert.ElementsMatch(t, []string{"first_step", "streak_3"}, s.UnlockedAchievements)
}

func TestEvaluate_CustomDefinitions(t *testing.T) {
	c, err := catalog.Load("en")
	require.NoError(t, err)
	e := NewEvaluator(c, []Definition{
		{ID: "puzzler", Condition: Condition{Metric: MetricPuzzlesSolved, Threshold: 2}},
		{ID: "bogus", Condition: Condition{Metric: "nope"}},
	})

	s := progress.NewStats()
	s.PuzzlesSolved = 2
	assert.Equal(t, []string{"puzzler"}, e.Evaluate(s))
}

func TestTextFor(t *testing.T) {
	d, ok := Get("word_master")
	require.True(t, ok)
	assert.Equal(t, "語源マスター", d.TextFor("ja").Title)
	assert.Equal(t, "Etymology Master", d.TextFor("en").Title)
	assert.Equal(t, "Etymology Master", d.TextFor("fr").Title)

	_, ok = Get("missing")
	assert.False(t, ok)
}
