package quiz

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/etymquest/internal/catalog"
)

// MaxDistractors is the number of wrong options offered when the catalog is
// large enough.
const MaxDistractors = 2

// Generator builds quizzes. Its random source is the only nondeterminism.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator. A nil rng is seeded from the clock.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Generator{rng: rng}
}

// Rand exposes the generator's random source for callers that need to make
// related choices (option scrambles, keyword picks) from the same seed.
func (g *Generator) Rand() *rand.Rand { return g.rng }

// Generate builds a quiz for target. Distractors are drawn uniformly without
// replacement from the rest of the catalog; a catalog with fewer than
// MaxDistractors other words yields fewer options rather than an error.
func (g *Generator) Generate(target catalog.Item, c *catalog.Catalog) (*Quiz, error) {
	if c == nil || c.Len() == 0 {
		return nil, &catalog.DataIntegrityError{Reason: "cannot build a quiz from an empty catalog"}
	}
	if !c.Has(target.Word) {
		return nil, &catalog.DataIntegrityError{
			Locale: c.Locale(),
			Reason: "quiz target " + target.Word + " is absent from the catalog",
		}
	}

	pool := make([]string, 0, c.Len()-1)
	for _, it := range c.Items() {
		if it.Word != target.Word {
			pool = append(pool, it.Word)
		}
	}

	// Partial Fisher-Yates: the first n slots become a uniform sample.
	n := min(MaxDistractors, len(pool))
	for i := 0; i < n; i++ {
		j := i + g.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	options := make([]string, 0, n+1)
	options = append(options, target.Word)
	options = append(options, pool[:n]...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Quiz{
		Word:        target.Word,
		Prompt:      c.Prompt(target.Meaning),
		Options:     options,
		Answer:      target.Word,
		Explanation: c.Explanation(target.Gloss),
	}, nil
}
