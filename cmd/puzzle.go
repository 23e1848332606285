package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/etymquest/internal/catalog"
	"github.com/abhisek/etymquest/internal/engine"
	"github.com/abhisek/etymquest/internal/puzzle"
	"github.com/abhisek/etymquest/internal/ui/theme"
	"github.com/spf13/cobra"
)

var puzzleCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Solve today's word-building puzzle",
	Long: "Put the scrambled parts of today's word back in order. Enter the block\n" +
		"numbers or the parts themselves separated by spaces, e.g. \"2 1 3\"; enter q to stop.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		out := cmd.OutOrStdout()
		in := bufio.NewScanner(cmd.InOrStdin())
		p := a.Engine.DailyPuzzle()

		lipgloss.Fprintln(out, theme.Title.Render("Daily puzzle"))
		lipgloss.Fprintln(out, a.Catalog.Prompt(p.Item.Meaning))
		lipgloss.Fprintln(out)
		for i, id := range p.Blocks {
			lipgloss.Fprintf(out, "  %d) %s\n", i+1, theme.Keyword.Render(blockLabel(a.Catalog, id)))
		}

		for {
			fmt.Fprint(out, "> ")
			if !in.Scan() {
				fmt.Fprintln(out)
				return in.Err()
			}
			input := strings.TrimSpace(in.Text())
			if input == "q" || input == "quit" {
				return nil
			}
			order, err := parseOrder(a.Catalog, p, input)
			if err != nil {
				lipgloss.Fprintln(out, theme.Hint.Render(err.Error()))
				continue
			}

			res, err := a.Engine.SolvePuzzle(order)
			if errors.Is(err, engine.ErrPuzzleSolved) {
				lipgloss.Fprintln(out, theme.Subtitle.Render("Today's puzzle is already solved. Come back tomorrow!"))
				return nil
			}
			if err != nil {
				return fmt.Errorf("solve puzzle: %w", err)
			}
			if !res.Solved {
				lipgloss.Fprintln(out, theme.Incorrect.Render("Not quite. Try another order."))
				continue
			}
			lipgloss.Fprintln(out, theme.Correct.Render(fmt.Sprintf("Solved! %s: %s", p.Item.Word, p.Item.Meaning)))
			lipgloss.Fprintln(out, theme.Hint.Render(a.Catalog.Explanation(p.Item.Gloss)))
			printEvents(out, a, res.Events)
			return nil
		}
	},
}

func blockLabel(c *catalog.Catalog, id string) string {
	if m, ok := c.Morpheme(id); ok {
		return m.Label
	}
	return id
}

// parseOrder turns the learner's input into morpheme IDs. Each field is a
// 1-based block number, a block's morpheme ID or its label.
func parseOrder(c *catalog.Catalog, p puzzle.Puzzle, input string) ([]string, error) {
	fields := strings.Fields(input)
	if len(fields) != len(p.Blocks) {
		return nil, fmt.Errorf("use all %d blocks, e.g. %q", len(p.Blocks), exampleOrder(len(p.Blocks)))
	}
	order := make([]string, 0, len(fields))
	for _, f := range fields {
		if n, err := strconv.Atoi(f); err == nil {
			if n < 1 || n > len(p.Blocks) {
				return nil, fmt.Errorf("there is no block %d", n)
			}
			order = append(order, p.Blocks[n-1])
			continue
		}
		id, ok := matchBlock(c, p.Blocks, f)
		if !ok {
			return nil, fmt.Errorf("%q is not one of the blocks", f)
		}
		order = append(order, id)
	}
	return order, nil
}

func matchBlock(c *catalog.Catalog, blocks []string, field string) (string, bool) {
	for _, id := range blocks {
		if strings.EqualFold(field, id) || strings.EqualFold(field, blockLabel(c, id)) {
			return id, true
		}
	}
	return "", false
}

func exampleOrder(n int) string {
	nums := make([]string, n)
	for i := range nums {
		nums[i] = strconv.Itoa(n - i)
	}
	return strings.Join(nums, " ")
}
