package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/etymquest/internal/catalog"
)

func seeded(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed)))
}

// smallCatalog builds a single-level catalog over the given words.
func smallCatalog(t *testing.T, words ...string) *catalog.Catalog {
	t.Helper()
	d := catalog.Data{
		Locale:    "test",
		Templates: catalog.Templates{Prompt: "means %s?", Explanation: "from %s"},
		Morphemes: []catalog.Morpheme{{ID: "root", Kind: catalog.KindRoot, Label: "root"}},
		Levels:    []catalog.Level{{ID: "level1", Words: words}},
	}
	for _, w := range words {
		d.Items = append(d.Items, catalog.Item{Word: w, Parts: []string{"root"}, Gloss: w + "-gloss", Meaning: w + "-meaning"})
	}
	c, err := catalog.New(d)
	require.NoError(t, err)
	return c
}

func TestGenerate_Properties(t *testing.T) {
	c, err := catalog.Load("en")
	require.NoError(t, err)

	for seed := uint64(0); seed < 200; seed++ {
		g := seeded(seed)
		for _, target := range c.Items() {
			q, err := g.Generate(target, c)
			require.NoError(t, err)

			assert.Len(t, q.Options, 3)
			hits := 0
			seen := map[string]bool{}
			for _, o := range q.Options {
				assert.False(t, seen[o], "duplicate option %q", o)
				seen[o] = true
				if o == target.Word {
					hits++
				}
				assert.True(t, c.Has(o))
			}
			assert.Equal(t, 1, hits)
			assert.Equal(t, target.Word, q.Answer)
		}
	}
}

func TestGenerate_PromptAndExplanation(t *testing.T) {
	c, err := catalog.Load("ja")
	require.NoError(t, err)
	target, ok := c.Item("permit")
	require.True(t, ok)

	q, err := seeded(1).Generate(target, c)
	require.NoError(t, err)
	assert.Equal(t, "「許可する」を意味する単語は？", q.Prompt)
	assert.Equal(t, "語源: 通り抜け送る", q.Explanation)
}

func TestGenerate_DegradesOnSmallCatalog(t *testing.T) {
	tests := []struct {
		words []string
		want  int
	}{
		{[]string{"solo"}, 1},
		{[]string{"one", "two"}, 2},
		{[]string{"one", "two", "three"}, 3},
		{[]string{"one", "two", "three", "four"}, 3},
	}
	for _, tt := range tests {
		c := smallCatalog(t, tt.words...)
		target, _ := c.Item(tt.words[0])
		q, err := seeded(7).Generate(target, c)
		require.NoError(t, err)
		assert.Len(t, q.Options, tt.want, "catalog %v", tt.words)
		assert.Contains(t, q.Options, tt.words[0])
	}
}

func TestGenerate_PositionNotBiased(t *testing.T) {
	c, err := catalog.Load("en")
	require.NoError(t, err)
	target, _ := c.Item("export")
	g := seeded(42)

	counts := make([]int, 3)
	const runs = 3000
	for i := 0; i < runs; i++ {
		q, err := g.Generate(target, c)
		require.NoError(t, err)
		for pos, o := range q.Options {
			if o == q.Answer {
				counts[pos]++
			}
		}
	}
	for pos, n := range counts {
		assert.InDelta(t, runs/3, n, runs/10, "answer position %d", pos)
	}
}

func TestGenerate_SameSeedSameQuiz(t *testing.T) {
	c, err := catalog.Load("en")
	require.NoError(t, err)
	target, _ := c.Item("review")

	a, err := seeded(99).Generate(target, c)
	require.NoError(t, err)
	b, err := seeded(99).Generate(target, c)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_IntegrityErrors(t *testing.T) {
	g := seeded(1)

	_, err := g.Generate(catalog.Item{Word: "x"}, nil)
	assert.ErrorIs(t, err, catalog.ErrDataIntegrity)

	c := smallCatalog(t, "one")
	_, err = g.Generate(catalog.Item{Word: "missing"}, c)
	assert.ErrorIs(t, err, catalog.ErrDataIntegrity)
}

func TestResolveOption(t *testing.T) {
	q := &Quiz{Options: []string{"export", "permit", "review"}, Answer: "permit"}

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"2", "permit", true},
		{" review ", "review", true},
		{"0", "", false},
		{"4", "", false},
		{"Permit", "", false},
	}
	for _, tt := range tests {
		got, ok := q.ResolveOption(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
