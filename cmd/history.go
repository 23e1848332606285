package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/etymquest/internal/engine"
	"github.com/abhisek/etymquest/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent learning events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		// LLM requests have their own view; over-fetch so the limit still
		// applies to learning events.
		fetch := limit
		if kind == "" && fetch > 0 {
			fetch *= 4
		}
		events, err := a.Store.EventRepo().Query(cmd.Context(), store.QueryOpts{Kind: kind, Limit: fetch})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-6s  %-19s  %-20s  %s\n", "ID", "Timestamp", "Kind", "Detail")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		shown := 0
		for _, e := range events {
			if kind == "" && e.Kind == store.EventKindLLMRequest {
				continue
			}
			if limit > 0 && shown == limit {
				break
			}
			fmt.Fprintf(out, "%-6d  %-19s  %-20s  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Kind,
				eventDetail(e),
			)
			shown++
		}
		if shown == 0 {
			fmt.Fprintln(out, "No events found.")
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Max events to show")
	historyCmd.Flags().String("kind", "", "Only show events of this kind (e.g. level_completed)")
}

func eventDetail(e store.Event) string {
	var ev engine.Event
	if err := json.Unmarshal(e.Payload, &ev); err != nil {
		return ""
	}
	var parts []string
	if ev.LevelID != "" {
		parts = append(parts, "level="+ev.LevelID)
	}
	if ev.Word != "" {
		parts = append(parts, "word="+ev.Word)
	}
	if ev.Selected != "" && ev.Selected != ev.Word {
		parts = append(parts, "selected="+ev.Selected)
	}
	if ev.AchievementID != "" {
		parts = append(parts, "achievement="+ev.AchievementID)
	}
	if ev.Streak > 0 {
		parts = append(parts, fmt.Sprintf("streak=%d", ev.Streak))
	}
	return strings.Join(parts, " ")
}
