package achievements

import (
	"github.com/abhisek/etymquest/internal/catalog"
	"github.com/abhisek/etymquest/internal/progress"
)

// Metric names the quantity a Condition measures.
type Metric string

const (
	MetricTotalScore     Metric = "total_score"
	MetricStreak         Metric = "streak"
	MetricPuzzlesSolved  Metric = "puzzles_solved"
	MetricLevelCompleted Metric = "level_completed"
	MetricAllLevels      Metric = "all_levels_completed"
)

// Condition is a pure predicate over LearnerStats expressed as data.
type Condition struct {
	Metric    Metric
	Threshold int    // for counter metrics: value must be >= Threshold
	LevelID   string // for MetricLevelCompleted
}

// Text is the locale-specific presentation of an achievement.
type Text struct {
	Title       string
	Description string
}

// Definition describes a single achievement.
type Definition struct {
	ID        string
	Icon      string
	Condition Condition
	Text      map[string]Text // keyed by locale
}

// TextFor returns the presentation text for locale, falling back to English.
func (d Definition) TextFor(locale string) Text {
	if t, ok := d.Text[locale]; ok {
		return t
	}
	return d.Text["en"]
}

// All is the list of achievements in display order.
var All = []Definition{
	{
		ID: "first_step", Icon: "⭐",
		Condition: Condition{Metric: MetricTotalScore, Threshold: 1},
		Text: map[string]Text{
			"ja": {"最初の一歩", "最初の1問に正解する"},
			"en": {"First Step", "Answer your first question"},
		},
	},
	{
		ID: "streak_3", Icon: "🔥",
		Condition: Condition{Metric: MetricStreak, Threshold: 3},
		Text: map[string]Text{
			"ja": {"燃える闘魂", "3日間連続で学習する"},
			"en": {"On Fire!", "Maintain a 3-day streak"},
		},
	},
	{
		ID: "level1_clear", Icon: "💎",
		Condition: Condition{Metric: MetricLevelCompleted, LevelID: "level1"},
		Text: map[string]Text{
			"ja": {"運び屋", "レベル1をクリア"},
			"en": {"Porter", "Clear Level 1"},
		},
	},
	{
		ID: "level4_clear", Icon: "🏅",
		Condition: Condition{Metric: MetricLevelCompleted, LevelID: "level4"},
		Text: map[string]Text{
			"ja": {"探求者", "レベル4をクリア"},
			"en": {"Explorer", "Clear Level 4"},
		},
	},
	{
		ID: "word_master", Icon: "🏆",
		Condition: Condition{Metric: MetricAllLevels},
		Text: map[string]Text{
			"ja": {"語源マスター", "全レベルをクリア"},
			"en": {"Etymology Master", "Clear all levels"},
		},
	},
}

// Get returns the definition with the given ID.
func Get(id string) (Definition, bool) {
	for _, d := range All {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// Holds reports whether cond is true for s. The catalog supplies the level set
// for MetricAllLevels.
func Holds(cond Condition, s progress.LearnerStats, c *catalog.Catalog) bool {
	switch cond.Metric {
	case MetricTotalScore:
		return s.TotalScore >= cond.Threshold
	case MetricStreak:
		return s.Streak >= cond.Threshold
	case MetricPuzzlesSolved:
		return s.PuzzlesSolved >= cond.Threshold
	case MetricLevelCompleted:
		return s.HasCompleted(cond.LevelID)
	case MetricAllLevels:
		for _, l := range c.Levels() {
			if !s.HasCompleted(l.ID) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Evaluator checks a fixed set of definitions against stats snapshots.
type Evaluator struct {
	defs    []Definition
	catalog *catalog.Catalog
}

// NewEvaluator creates an Evaluator. A nil defs uses All.
func NewEvaluator(c *catalog.Catalog, defs []Definition) *Evaluator {
	if defs == nil {
		defs = All
	}
	return &Evaluator{defs: defs, catalog: c}
}

// Evaluate returns the IDs whose conditions hold for s and that s has not
// unlocked yet. Every condition sees the same snapshot, so order does not
// matter. The caller unions the result into s.
func (e *Evaluator) Evaluate(s progress.LearnerStats) []string {
	var unlocked []string
	for _, d := range e.defs {
		if s.HasAchievement(d.ID) {
			continue
		}
		if Holds(d.Condition, s, e.catalog) {
			unlocked = append(unlocked, d.ID)
		}
	}
	return unlocked
}

// Apply evaluates s and unions the result into it, returning the new IDs.
func (e *Evaluator) Apply(s *progress.LearnerStats) []string {
	return s.UnlockAchievements(e.Evaluate(*s)...)
}
