package llm

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/abhisek/etymquest/internal/store"
)

// ModelCost holds per-million-token pricing for a model, in USD.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
// OpenRouter ids ("vendor/model") are matched on the model part.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	if _, m, ok := strings.Cut(modelID, "/"); ok {
		if c, ok := modelCosts[m]; ok {
			return &c
		}
	}
	return nil
}

// Last updated: 2026-02-15, from models.dev.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-3-5-haiku-latest":   {0.8, 4},
	"claude-haiku-4-5":          {1, 5},
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-5":         {3, 15},
	"claude-opus-4-5":           {5, 25},

	// OpenAI
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},

	// Google (Gemini)
	"gemini-2.0-flash":       {0.1, 0.4},
	"gemini-2.0-flash-lite":  {0.075, 0.3},
	"gemini-2.5-flash":       {0.3, 2.5},
	"gemini-2.5-flash-lite":  {0.1, 0.4},
	"gemini-2.5-pro":         {1.25, 10},
	"gemini-3-flash-preview": {0.5, 3},
}

// UsageRow aggregates recorded LLM requests for one provider and model.
type UsageRow struct {
	Provider     string
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	// Cost is nil when the model has no known pricing.
	Cost *float64
}

// SummarizeUsage aggregates llm_request events by provider and model.
// Events of other kinds and undecodable payloads are skipped.
func SummarizeUsage(events []store.Event) []UsageRow {
	rows := make(map[[2]string]*UsageRow)
	for _, ev := range events {
		if ev.Kind != store.EventKindLLMRequest {
			continue
		}
		var d store.LLMRequestEventData
		if err := json.Unmarshal(ev.Payload, &d); err != nil {
			continue
		}
		k := [2]string{d.Provider, d.Model}
		r, ok := rows[k]
		if !ok {
			r = &UsageRow{Provider: d.Provider, Model: d.Model}
			rows[k] = r
		}
		r.Requests++
		if !d.Success {
			r.Failures++
		}
		r.InputTokens += d.InputTokens
		r.OutputTokens += d.OutputTokens
	}

	out := make([]UsageRow, 0, len(rows))
	for _, r := range rows {
		if mc := LookupCost(r.Model); mc != nil {
			c := mc.Cost(r.InputTokens, r.OutputTokens)
			r.Cost = &c
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Provider != out[j].Provider {
			return out[i].Provider < out[j].Provider
		}
		return out[i].Model < out[j].Model
	})
	return out
}
