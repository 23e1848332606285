package progress

import "slices"

// LearnerStats is the complete per-learner progress record.
// JSON field names are kept stable so stored documents stay readable.
type LearnerStats struct {
	DailyScore           int       `json:"score"`
	TotalScore           int       `json:"totalScore"`
	Streak               int       `json:"streak"`
	LastPlayed           *Date     `json:"lastPlayed"`
	UnlockedAchievements []string  `json:"unlockedAchievements"`
	PuzzlesSolved        int       `json:"puzzlesSolved"`
	CompletedLevels      []string  `json:"completedLevels"`
	WeakWords            WeakWords `json:"weakWords"`
}

// NewStats returns the zero-progress record used for first launch and for
// unreadable stored data.
func NewStats() LearnerStats {
	return LearnerStats{
		UnlockedAchievements: []string{},
		CompletedLevels:      []string{},
		WeakWords:            WeakWords{},
	}
}

// Clone returns a deep copy.
func (s LearnerStats) Clone() LearnerStats {
	out := s
	if s.LastPlayed != nil {
		d := *s.LastPlayed
		out.LastPlayed = &d
	}
	out.UnlockedAchievements = append([]string{}, s.UnlockedAchievements...)
	out.CompletedLevels = append([]string{}, s.CompletedLevels...)
	out.WeakWords = append(WeakWords{}, s.WeakWords...)
	return out
}

// HasCompleted reports whether levelID is in the completed set.
func (s LearnerStats) HasCompleted(levelID string) bool {
	return slices.Contains(s.CompletedLevels, levelID)
}

// MarkCompleted adds levelID to the completed set. It returns false if the level
// was already there.
func (s *LearnerStats) MarkCompleted(levelID string) bool {
	if s.HasCompleted(levelID) {
		return false
	}
	s.CompletedLevels = append(s.CompletedLevels, levelID)
	return true
}

// HasAchievement reports whether id is unlocked.
func (s LearnerStats) HasAchievement(id string) bool {
	return slices.Contains(s.UnlockedAchievements, id)
}

// UnlockAchievements unions ids into the unlocked set and returns the ones that
// were not already present.
func (s *LearnerStats) UnlockAchievements(ids ...string) []string {
	var added []string
	for _, id := range ids {
		if s.HasAchievement(id) || slices.Contains(added, id) {
			continue
		}
		s.UnlockedAchievements = append(s.UnlockedAchievements, id)
		added = append(added, id)
	}
	return added
}

// RecordCorrect applies the score side of a correct answer.
// It does not roll the day over: a session that runs past midnight keeps
// adding to the daily score it started with, and LastPlayed moves to today,
// so the next session that day sees no gap. Rollover runs once per session.
func (s *LearnerStats) RecordCorrect(today Date) {
	s.DailyScore++
	s.TotalScore++
	s.LastPlayed = &today
}

// Sanitize drops level IDs and weak words the active content does not define and
// clamps negative counters. It returns true if anything changed.
func (s *LearnerStats) Sanitize(isLevel, isWord func(string) bool) bool {
	changed := false

	levels := []string{}
	for _, id := range s.CompletedLevels {
		if isLevel(id) && !slices.Contains(levels, id) {
			levels = append(levels, id)
		} else {
			changed = true
		}
	}
	s.CompletedLevels = levels

	words := WeakWords{}
	for _, w := range s.WeakWords {
		if isWord(w) && !words.Contains(w) {
			words = append(words, w)
		} else {
			changed = true
		}
	}
	s.WeakWords = words

	if s.UnlockedAchievements == nil {
		s.UnlockedAchievements = []string{}
	}
	for _, n := range []*int{&s.DailyScore, &s.TotalScore, &s.Streak, &s.PuzzlesSolved} {
		if *n < 0 {
			*n = 0
			changed = true
		}
	}
	return changed
}
