package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/etymquest/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Current int
	Goal    int
	Width   int
}

// NewProgressBar creates a new progress bar toward goal.
func NewProgressBar(label string, current, goal, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Current: current,
		Goal:    goal,
		Width:   width,
	}
}

// Percent returns the filled fraction, clamped to [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Goal <= 0 {
		return 1
	}
	return min(max(float64(p.Current)/float64(p.Goal), 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	count := fmt.Sprintf("  %d/%d", p.Current, p.Goal)
	barWidth := p.Width - lipgloss.Width(result) - len(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat("█", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat("░", empty))
	result += theme.Subtitle.Render(count)

	return result
}
