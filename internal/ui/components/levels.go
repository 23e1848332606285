package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/etymquest/internal/progress"
	"github.com/abhisek/etymquest/internal/ui/theme"
)

// StateStyle returns the style for a level state.
func StateStyle(s progress.LevelState) lipgloss.Style {
	switch s {
	case progress.StateCompleted:
		return theme.Completed
	case progress.StateUnlocked:
		return theme.Unlocked
	default:
		return theme.Locked
	}
}

// LevelTable renders the learning path, one row per level.
func LevelTable(levels []progress.LevelStatus) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("", "ID", "Title", "Words")

	for _, ls := range levels {
		t.Row(ls.State.Icon(), ls.Level.ID, ls.Level.Title, fmt.Sprint(len(ls.Level.Words)))
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		base := lipgloss.NewStyle().Padding(0, 1)
		if row == table.HeaderRow {
			return base.Inherit(theme.Title)
		}
		if row >= 0 && row < len(levels) {
			return base.Inherit(StateStyle(levels[row].State))
		}
		return base
	})
	return t.Render()
}
