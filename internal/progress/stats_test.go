package progress

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockAchievements_OnlyGrows(t *testing.T) {
	s := NewStats()

	added := s.UnlockAchievements("first_step", "first_step")
	assert.Equal(t, []string{"first_step"}, added)

	added = s.UnlockAchievements("first_step", "streak_3")
	assert.Equal(t, []string{"streak_3"}, added)
	assert.Equal(t, []string{"first_step", "streak_3"}, s.UnlockedAchievements)
}

func TestRecordCorrect(t *testing.T) {
	s := NewStats()
	today := mustDate(t, "2024-05-02")

	s.RecordCorrect(today)
	s.RecordCorrect(today)

	assert.Equal(t, 2, s.DailyScore)
	assert.Equal(t, 2, s.TotalScore)
	require.NotNil(t, s.LastPlayed)
	assert.Equal(t, today, *s.LastPlayed)
}

func TestRecordCorrect_PastMidnightKeepsDailyScore(t *testing.T) {
	s := NewStats()
	s.RecordCorrect(mustDate(t, "2024-05-02"))
	next := mustDate(t, "2024-05-03")
	s.RecordCorrect(next)

	assert.Equal(t, 2, s.DailyScore)
	assert.Equal(t, next, *s.LastPlayed)
}

func TestClone_Deep(t *testing.T) {
	d := mustDate(t, "2024-05-01")
	s := NewStats()
	s.LastPlayed = &d
	s.WeakWords.Insert("permit")

	c := s.Clone()
	c.WeakWords.Insert("export")
	c.CompletedLevels = append(c.CompletedLevels, "level1")
	*c.LastPlayed = d.AddDays(3)

	assert.Equal(t, WeakWords{"permit"}, s.WeakWords)
	assert.Empty(t, s.CompletedLevels)
	assert.Equal(t, d, *s.LastPlayed)
}

func TestSanitize(t *testing.T) {
	s := LearnerStats{
		DailyScore:      -1,
		CompletedLevels: []string{"level1", "ghost", "level1"},
		WeakWords:       WeakWords{"permit", "zzz"},
	}
	known := func(set ...string) func(string) bool {
		return func(v string) bool {
			for _, k := range set {
				if k == v {
					return true
				}
			}
			return false
		}
	}

	changed := s.Sanitize(known("level1", "level2"), known("permit"))

	assert.True(t, changed)
	assert.Equal(t, []string{"level1"}, s.CompletedLevels)
	assert.Equal(t, WeakWords{"permit"}, s.WeakWords)
	assert.Equal(t, 0, s.DailyScore)
	assert.NotNil(t, s.UnlockedAchievements)
}

func TestLearnerStats_StoredFieldNames(t *testing.T) {
	raw := `{"score":2,"totalScore":9,"streak":3,"lastPlayed":"2024-05-01",
		"unlockedAchievements":["first_step"],"puzzlesSolved":1,
		"completedLevels":["level1"],"weakWords":["permit"]}`

	var s LearnerStats
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, 2, s.DailyScore)
	assert.Equal(t, 9, s.TotalScore)
	require.NotNil(t, s.LastPlayed)
	assert.Equal(t, "2024-05-01", s.LastPlayed.String())
	assert.Equal(t, WeakWords{"permit"}, s.WeakWords)
}
