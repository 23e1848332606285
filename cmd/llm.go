package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/abhisek/etymquest/internal/app"
	"github.com/abhisek/etymquest/internal/llm"
	"github.com/abhisek/etymquest/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

// openStore opens the database alone, for commands that only read the
// activity log.
func openStore() (*store.Store, error) {
	dbPath, err := app.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func decodeLLMEvent(e store.Event) (store.LLMRequestEventData, error) {
	var d store.LLMRequestEventData
	if err := json.Unmarshal(e.Payload, &d); err != nil {
		return d, fmt.Errorf("decode event %d: %w", e.ID, err)
	}
	return d, nil
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().Query(cmd.Context(), store.QueryOpts{Kind: store.EventKindLLMRequest, Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM events found.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-12s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Provider", "Model", "In", "Out", "Ms", "OK")
		fmt.Fprintln(out, strings.Repeat("─", 114))

		for _, e := range events {
			d, err := decodeLLMEvent(e)
			if err != nil {
				logger.Warn("skipping undecodable event", slog.Int("id", e.ID), slog.Any("error", err))
				continue
			}
			if purpose != "" && d.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !d.Success {
				ok = "✗"
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-12s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				d.Purpose,
				d.Provider,
				truncate(d.Model, 28),
				d.InputTokens,
				d.OutputTokens,
				d.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().Get(cmd.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("event %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e.Kind != store.EventKindLLMRequest {
			return fmt.Errorf("event %d is a %s event, not an LLM request", id, e.Kind)
		}
		d, err := decodeLLMEvent(e)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		sep := strings.Repeat("─", 60)

		fmt.Fprintf(out, "ID:        %d\n", e.ID)
		fmt.Fprintf(out, "Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Provider:  %s\n", d.Provider)
		fmt.Fprintf(out, "Model:     %s\n", d.Model)
		fmt.Fprintf(out, "Purpose:   %s\n", d.Purpose)
		fmt.Fprintf(out, "Tokens:    %d in / %d out\n", d.InputTokens, d.OutputTokens)
		fmt.Fprintf(out, "Latency:   %dms\n", d.LatencyMs)
		fmt.Fprintf(out, "Success:   %v\n", d.Success)
		if d.ErrorMessage != "" {
			fmt.Fprintf(out, "Error:     %s\n", d.ErrorMessage)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, "REQUEST")
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, orNotCaptured(d.RequestBody))

		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, "RESPONSE")
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, orNotCaptured(d.ResponseBody))
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().Query(cmd.Context(), store.QueryOpts{Kind: store.EventKindLLMRequest})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		rows := llm.SummarizeUsage(events)
		if len(rows) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}

		fmt.Fprintln(out, "Usage and Estimated Cost (USD)")
		fmt.Fprintln(out, strings.Repeat("─", 88))
		fmt.Fprintf(out, "%-10s  %-28s  %6s  %6s  %10s  %10s  %10s\n",
			"Provider", "Model", "Calls", "Failed", "Input", "Output", "Cost")
		fmt.Fprintln(out, strings.Repeat("─", 88))

		var totalCalls, totalIn, totalOut int
		var totalCost float64
		var unknownModels []string
		for _, r := range rows {
			totalCalls += r.Requests
			totalIn += r.InputTokens
			totalOut += r.OutputTokens
			cost := "?"
			if r.Cost == nil {
				unknownModels = append(unknownModels, r.Model)
			} else {
				totalCost += *r.Cost
				cost = formatCost(*r.Cost)
			}
			fmt.Fprintf(out, "%-10s  %-28s  %6d  %6d  %10d  %10d  %10s\n",
				r.Provider, truncate(r.Model, 28), r.Requests, r.Failures, r.InputTokens, r.OutputTokens, cost)
		}

		fmt.Fprintln(out, strings.Repeat("─", 88))
		label := "TOTAL"
		if len(unknownModels) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Fprintf(out, "%-40s  %6d  %6s  %10d  %10d  %10s\n",
			label, totalCalls, "", totalIn, totalOut, formatCost(totalCost))

		if len(unknownModels) > 0 {
			fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
		}
		return nil
	},
}

func orNotCaptured(s string) string {
	if s == "" {
		return "(not captured)"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (story or story-proxy)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
