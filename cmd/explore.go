package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/etymquest/internal/catalog"
	"github.com/abhisek/etymquest/internal/ui/theme"
	"github.com/spf13/cobra"
)

var dictCmd = &cobra.Command{
	Use:   "dict [term]",
	Short: "Search prefixes, roots and suffixes",
	Long:  "Search the morpheme dictionary by label or meaning. Without a term every entry is listed.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(cfg.Locale)
		if err != nil {
			return err
		}
		term := ""
		if len(args) == 1 {
			term = args[0]
		}

		out := cmd.OutOrStdout()
		results := cat.Search(term)
		if len(results) == 0 {
			fmt.Fprintf(out, "No entries match %q.\n", term)
			return nil
		}
		var kind catalog.MorphemeKind
		for _, m := range results {
			if m.Kind != kind {
				kind = m.Kind
				lipgloss.Fprintln(out, theme.Subtitle.Render(strings.ToUpper(string(kind))))
			}
			lipgloss.Fprintf(out, "  %s  %s  %s\n",
				theme.Keyword.Render(fmt.Sprintf("%-10s", m.Label)),
				m.Meaning,
				theme.Hint.Render(m.Origin))
		}
		return nil
	},
}

var mapCmd = &cobra.Command{
	Use:   "map <word>",
	Short: "Show the words that share a part with word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(cfg.Locale)
		if err != nil {
			return err
		}
		word := strings.ToLower(strings.TrimSpace(args[0]))
		item, ok := cat.Item(word)
		if !ok {
			return fmt.Errorf("%q is not in the word list", word)
		}
		rels, err := cat.Related(word)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		lipgloss.Fprintln(out, theme.Title.Render(item.Word)+"  "+item.Meaning)
		lipgloss.Fprintln(out, theme.Hint.Render(cat.Explanation(item.Gloss)))
		for _, r := range rels {
			lipgloss.Fprintf(out, "  %s (%s)\n", theme.Keyword.Render(r.Part.Label), r.Part.Meaning)
			if len(r.Words) == 0 {
				lipgloss.Fprintln(out, theme.Subtitle.Render("      no other words"))
				continue
			}
			for _, w := range r.Words {
				lipgloss.Fprintln(out, "      "+w)
			}
		}
		return nil
	},
}
