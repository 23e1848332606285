package quiz

import (
	"slices"
	"strconv"
	"strings"
)

// Quiz is one multiple-choice question about a vocabulary item.
type Quiz struct {
	// Word is the target vocabulary item's key.
	Word string

	// Prompt asks for the word matching the target's meaning.
	Prompt string

	// Options holds the target and its distractors in shuffled order.
	// Never contains duplicates; always contains Answer exactly once.
	Options []string

	// Answer is the correct option.
	Answer string

	// Explanation is shown after answering and carries the target's gloss.
	Explanation string
}

// ResolveOption maps driver input to an option string. Input may be the
// 1-based option number or the option text itself (surrounding space ignored).
func (q *Quiz) ResolveOption(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(q.Options) {
			return q.Options[n-1], true
		}
		return "", false
	}
	if slices.Contains(q.Options, input) {
		return input, true
	}
	return "", false
}
