package catalog

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// CoreLevels derives one practice level per root morpheme from the words that
// contain it. Roots no word uses are skipped.
func (c *Catalog) CoreLevels() []Level {
	var out []Level
	for _, m := range c.Morphemes(KindRoot) {
		var words []string
		for _, it := range c.items {
			if slices.Contains(it.Parts, m.ID) {
				words = append(words, it.Word)
			}
		}
		if len(words) == 0 {
			continue
		}
		out = append(out, Level{
			ID:    CoreLevelPrefix + m.ID,
			Title: fmt.Sprintf(c.templates.CoreTitle, m.Label),
			Icon:  m.ID,
			Words: words,
			Kind:  LevelCore,
		})
	}
	return out
}

// Search matches term case-insensitively against morpheme labels and meanings.
// An empty term matches everything. Results are grouped prefixes, roots, suffixes.
func (c *Catalog) Search(term string) []Morpheme {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []Morpheme
	for _, kind := range AllMorphemeKinds() {
		for _, m := range c.Morphemes(kind) {
			if term == "" ||
				strings.Contains(strings.ToLower(m.Label), term) ||
				strings.Contains(strings.ToLower(m.Meaning), term) {
				out = append(out, m)
			}
		}
	}
	return out
}

// Relation groups the words that share one morpheme with a given word.
type Relation struct {
	Part  Morpheme
	Words []string
}

// Related returns, for each part of word, the other words built on that part.
func (c *Catalog) Related(word string) ([]Relation, error) {
	it, ok := c.itemByWord[word]
	if !ok {
		return nil, fmt.Errorf("word %q not in %s catalog", word, c.locale)
	}
	out := make([]Relation, 0, len(it.Parts))
	for _, p := range it.Parts {
		m, ok := c.morphemeByID[p]
		if !ok {
			return nil, integrityErr(c.locale, "word %q references morpheme %q absent from the catalog", word, p)
		}
		rel := Relation{Part: *m}
		for _, other := range c.items {
			if other.Word != word && slices.Contains(other.Parts, p) {
				rel.Words = append(rel.Words, other.Word)
			}
		}
		out = append(out, rel)
	}
	return out, nil
}

// DailyPuzzle picks the puzzle item for a calendar day (day of month modulo the
// catalog size).
func (c *Catalog) DailyPuzzle(day time.Time) Item {
	return c.items[day.Day()%len(c.items)]
}
