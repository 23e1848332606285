package progress

// Rollover advances the daily counters for a new session started on today.
// Playing on consecutive days extends the streak; any gap restarts it at 1.
// A second session on the same day changes nothing.
func Rollover(s LearnerStats, today Date) LearnerStats {
	out := s.Clone()
	if s.LastPlayed != nil && *s.LastPlayed == today {
		return out
	}
	if s.LastPlayed != nil && s.LastPlayed.AddDays(1) == today {
		out.Streak++
	} else {
		out.Streak = 1
	}
	out.DailyScore = 0
	out.LastPlayed = &today
	return out
}
