package puzzle

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/etymquest/internal/catalog"
)

func TestScramble(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		moved bool
	}{
		{"empty", nil, false},
		{"single", []string{"port"}, false},
		{"identical", []string{"a", "a"}, false},
		{"two", []string{"ex-", "port"}, true},
		{"three", []string{"in-neg", "vis", "-able"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(0); seed < 50; seed++ {
				rng := rand.New(rand.NewPCG(seed, seed))
				got := Scramble(tt.parts, rng)

				assert.ElementsMatch(t, tt.parts, got)
				if tt.moved {
					assert.False(t, slices.Equal(tt.parts, got), "seed %d left order unchanged", seed)
				}
			}
		})
	}
}

func TestScramble_DoesNotMutateInput(t *testing.T) {
	parts := []string{"in-", "spect", "-ion"}
	Scramble(parts, rand.New(rand.NewPCG(1, 1)))
	assert.Equal(t, []string{"in-", "spect", "-ion"}, parts)
}

func TestCheck(t *testing.T) {
	item := catalog.Item{Word: "export", Parts: []string{"ex-", "port"}}
	p := New(item, rand.New(rand.NewPCG(3, 3)))

	assert.True(t, p.Check([]string{"ex-", "port"}))
	assert.False(t, p.Check([]string{"port", "ex-"}))
	assert.False(t, p.Check([]string{"ex-"}))
	assert.False(t, p.Check(nil))
}
