// Package puzzle implements the daily word-building puzzle: a word's morpheme
// blocks are shuffled and the learner puts them back in order.
package puzzle

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/etymquest/internal/catalog"
)

// Puzzle is the day's target and its blocks in presentation order.
type Puzzle struct {
	Item   catalog.Item
	Blocks []string
}

// New builds the puzzle for item with its parts scrambled by rng.
func New(item catalog.Item, rng *rand.Rand) Puzzle {
	return Puzzle{Item: item, Blocks: Scramble(item.Parts, rng)}
}

// Scramble returns a shuffled copy of parts. When there is more than one
// distinct ordering, the result never equals the input order.
func Scramble(parts []string, rng *rand.Rand) []string {
	out := slices.Clone(parts)
	if len(out) < 2 || allEqual(out) {
		return out
	}
	for {
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		if !slices.Equal(out, parts) {
			return out
		}
	}
}

// Check reports whether order spells the item's parts exactly.
func (p Puzzle) Check(order []string) bool {
	return slices.Equal(order, p.Item.Parts)
}

func allEqual(s []string) bool {
	for _, v := range s[1:] {
		if v != s[0] {
			return false
		}
	}
	return true
}
