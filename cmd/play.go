package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/etymquest/internal/achievements"
	"github.com/abhisek/etymquest/internal/app"
	"github.com/abhisek/etymquest/internal/engine"
	"github.com/abhisek/etymquest/internal/progress"
	"github.com/abhisek/etymquest/internal/ui/components"
	"github.com/abhisek/etymquest/internal/ui/theme"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level of the learning path",
	Long: "Play a level. Without an argument the first unlocked, uncleared level is chosen.\n" +
		"Answer with the option number or the word itself; enter q to stop.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, _ := cmd.Flags().GetBool("core")
		var level string
		if len(args) == 1 {
			level = args[0]
		}
		return runPlay(cmd, level, core)
	},
}

func init() {
	playCmd.Flags().Bool("core", false, "List the core practice levels instead of the learning path")
}

func runPlay(cmd *cobra.Command, levelID string, core bool) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(a)

	out := cmd.OutOrStdout()
	events, err := a.Engine.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	printEvents(out, a, events)

	if levelID == "" {
		if core {
			printCoreLevels(out, a)
			return nil
		}
		lipgloss.Fprintln(out, components.LevelTable(a.Engine.Levels()))
		if a.Engine.ReviewAvailable() {
			lipgloss.Fprintln(out, theme.Hint.Render("Review is available: etymquest play review"))
		}

		levelID = nextLevel(a.Engine.Levels())
		if levelID == "" {
			lipgloss.Fprintln(out, theme.Completed.Render("Every level is cleared. Replay one with `etymquest play <level>`."))
			return nil
		}
		lipgloss.Fprintln(out)
	}
	return playLesson(cmd, a, levelID)
}

// nextLevel returns the first playable level not yet cleared.
func nextLevel(levels []progress.LevelStatus) string {
	for _, ls := range levels {
		if ls.State == progress.StateUnlocked {
			return ls.Level.ID
		}
	}
	return ""
}

func printCoreLevels(w io.Writer, a *app.App) {
	lipgloss.Fprintln(w, theme.Title.Render("Core practice"))
	for _, l := range a.Engine.CoreLevels() {
		lipgloss.Fprintf(w, "  %-14s %s (%d words)\n", l.ID, l.Title, len(l.Words))
	}
}

func playLesson(cmd *cobra.Command, a *app.App, levelID string) error {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	q, err := a.Engine.StartLesson(levelID)
	if err != nil {
		if errors.Is(err, progress.ErrLevelLocked) {
			return fmt.Errorf("level %q is locked; clear the previous level first", levelID)
		}
		return err
	}
	defer a.Engine.EndLesson()

	if ls, ok := a.Engine.Lesson(); ok {
		lipgloss.Fprintln(out, theme.Title.Render(ls.Level.Title))
		lipgloss.Fprintln(out)
	}

	for q != nil {
		lipgloss.Fprint(out, components.NewQuizCard(q).View())
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}
		input := strings.TrimSpace(in.Text())
		if input == "q" || input == "quit" {
			lipgloss.Fprintln(out, theme.Subtitle.Render("Progress so far is saved."))
			return nil
		}
		option, ok := q.ResolveOption(input)
		if !ok {
			lipgloss.Fprintln(out, theme.Hint.Render(fmt.Sprintf("Enter 1-%d or one of the words.", len(q.Options))))
			continue
		}

		res, err := a.Engine.Submit(option)
		if err != nil {
			return fmt.Errorf("submit answer: %w", err)
		}
		lipgloss.Fprintln(out)
		lipgloss.Fprint(out, components.NewQuizCard(q).WithVerdict(res.Verdict).View())
		if res.Verdict.Correct {
			lipgloss.Fprintln(out, theme.Correct.Render("Correct!"))
		} else {
			lipgloss.Fprintln(out, theme.Incorrect.Render("Not quite. Try this one again."))
		}
		lipgloss.Fprintln(out, components.NewProgressBar("Level", res.Correct, res.Needed, 20).View())
		printEvents(out, a, res.Events)
		lipgloss.Fprintln(out)

		q, err = a.Engine.Next()
		if err != nil {
			return err
		}
	}
	return nil
}

// printEvents announces the milestones among events.
func printEvents(w io.Writer, a *app.App, events []engine.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case engine.EventLevelCompleted:
			lipgloss.Fprintln(w, theme.Completed.Render("Level cleared!"))
		case engine.EventLevelUnlocked:
			if l, ok := a.Catalog.Level(ev.LevelID); ok {
				lipgloss.Fprintln(w, theme.Unlocked.Render("Unlocked: "+l.Title))
			}
		case engine.EventReviewCleared:
			lipgloss.Fprintln(w, theme.Completed.Render("Review cleared. Weak words reset."))
		case engine.EventAchievementUnlocked:
			if d, ok := achievements.Get(ev.AchievementID); ok {
				t := d.TextFor(a.Catalog.Locale())
				lipgloss.Fprintln(w, theme.Keyword.Render(fmt.Sprintf("%s Achievement: %s", d.Icon, t.Title)))
			}
		case engine.EventSessionStarted:
			if ev.Streak > 1 {
				lipgloss.Fprintln(w, theme.Subtitle.Render(fmt.Sprintf("🔥 %d-day streak", ev.Streak)))
			}
		}
	}
}
