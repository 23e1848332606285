package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/etymquest/internal/achievements"
	"github.com/abhisek/etymquest/internal/app"
	"github.com/abhisek/etymquest/internal/ui/components"
	"github.com/abhisek/etymquest/internal/ui/theme"
	"github.com/spf13/cobra"
)

// dailyGoal is the number of correct answers the daily progress bar fills at.
const dailyGoal = 10

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		// Starting the session applies the streak rollover before reporting.
		if _, err := a.Engine.StartSession(); err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		printStats(cmd.OutOrStdout(), a)
		return nil
	},
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the learning path and level states",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		out := cmd.OutOrStdout()
		lipgloss.Fprintln(out, components.LevelTable(a.Engine.Levels()))
		if a.Engine.ReviewAvailable() {
			lipgloss.Fprintln(out, theme.Hint.Render("Review is available: etymquest play review"))
		}
		return nil
	},
}

func printStats(w io.Writer, a *app.App) {
	s := a.Engine.Stats()
	locale := a.Catalog.Locale()

	lipgloss.Fprintln(w, theme.Title.Render("Your progress"))
	lipgloss.Fprintln(w, components.NewProgressBar("Daily goal", s.DailyScore, dailyGoal, 20).View())
	lipgloss.Fprintf(w, "Streak:         %d day(s)\n", s.Streak)
	lipgloss.Fprintf(w, "Total score:    %d\n", s.TotalScore)
	lipgloss.Fprintf(w, "Puzzles solved: %d\n", s.PuzzlesSolved)
	lipgloss.Fprintln(w)

	lipgloss.Fprintln(w, components.LevelTable(a.Engine.Levels()))
	lipgloss.Fprintln(w)

	lipgloss.Fprintln(w, theme.Subtitle.Render("Achievements"))
	for _, d := range achievements.All {
		t := d.TextFor(locale)
		line := fmt.Sprintf("  %s %s  %s", d.Icon, t.Title, t.Description)
		if s.HasAchievement(d.ID) {
			lipgloss.Fprintln(w, theme.Completed.Render(line))
		} else {
			lipgloss.Fprintln(w, theme.Locked.Render(line))
		}
	}
	lipgloss.Fprintln(w)

	lipgloss.Fprintln(w, theme.Subtitle.Render("Weak words"))
	if s.WeakWords.Len() == 0 {
		lipgloss.Fprintln(w, theme.Hint.Render("  none"))
		return
	}
	lipgloss.Fprintln(w, "  "+strings.Join(s.WeakWords.Snapshot(), ", "))
}
