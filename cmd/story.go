package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/etymquest/internal/catalog"
	"github.com/abhisek/etymquest/internal/story"
	"github.com/abhisek/etymquest/internal/ui/components"
	"github.com/abhisek/etymquest/internal/ui/theme"
	"github.com/spf13/cobra"
)

var storyCmd = &cobra.Command{
	Use:   "story [level]",
	Short: "Read a short story built from a level's words",
	Long: "Generate a short English story that uses the words of a level, or three random\n" +
		"words when no level is given. Stories come from the story proxy when\n" +
		"story.proxy_url is set, otherwise directly from the configured LLM provider.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		var level *catalog.Level
		topic := ""
		if len(args) == 1 {
			l, ok := a.Catalog.Level(args[0])
			if !ok {
				return fmt.Errorf("unknown level %q", args[0])
			}
			level = &l
			topic = l.Title
		}

		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		keywords := story.Keywords(level, a.Catalog, rng)
		prompt := story.BuildPrompt(a.Catalog.Locale(), topic, keywords)

		gen, err := a.StoryGenerator(cmd.Context())
		if err != nil {
			return fmt.Errorf("story generator: %w", err)
		}

		out := cmd.OutOrStdout()
		lipgloss.Fprintln(out, theme.Subtitle.Render("Writing a story..."))

		outcome := make(chan story.Outcome, 1)
		req := story.NewRequester(gen, cfg.Story.Timeout)
		req.Request(cmd.Context(), prompt, func(o story.Outcome) { outcome <- o })
		req.Wait()
		o := <-outcome

		if o.Err != nil {
			logger.Error("story generation failed", slog.Any("error", o.Err))
			lipgloss.Fprintln(out, theme.Incorrect.Render(story.FallbackMessage(a.Catalog.Locale())))
			return nil
		}

		lipgloss.Fprintln(out)
		lipgloss.Fprintln(out, components.StoryText(story.Highlight(o.Text, keywords)))
		lipgloss.Fprintln(out)
		lipgloss.Fprintln(out, theme.Subtitle.Render("Words in this story"))
		for _, w := range keywords {
			if hint, ok := story.Hint(a.Catalog, w); ok {
				lipgloss.Fprintln(out, "  "+hint)
			}
		}
		return nil
	},
}
