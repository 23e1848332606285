package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Catalog is the indexed, read-only content for one locale.
type Catalog struct {
	locale    string
	templates Templates
	morphemes []Morpheme
	items     []Item
	levels    []Level

	morphemeByID map[string]*Morpheme
	itemByWord   map[string]*Item
	levelByID    map[string]*Level
	predecessor  map[string]string
}

// New validates d and builds the lookup indices.
// Any dangling reference is reported as a DataIntegrityError.
func New(d Data) (*Catalog, error) {
	if err := validate(d); err != nil {
		return nil, err
	}

	c := &Catalog{
		locale:       d.Locale,
		templates:    d.Templates,
		morphemes:    slices.Clone(d.Morphemes),
		items:        slices.Clone(d.Items),
		levels:       slices.Clone(d.Levels),
		morphemeByID: make(map[string]*Morpheme, len(d.Morphemes)),
		itemByWord:   make(map[string]*Item, len(d.Items)),
		levelByID:    make(map[string]*Level, len(d.Levels)),
		predecessor:  make(map[string]string, len(d.Levels)),
	}
	for i := range c.morphemes {
		c.morphemeByID[c.morphemes[i].ID] = &c.morphemes[i]
	}
	for i := range c.items {
		c.itemByWord[c.items[i].Word] = &c.items[i]
	}
	for i := range c.levels {
		c.levels[i].Kind = LevelPath
		c.levelByID[c.levels[i].ID] = &c.levels[i]
		if next := c.levels[i].Unlocks; next != "" {
			c.predecessor[next] = c.levels[i].ID
		}
	}
	return c, nil
}

// Load returns the bundled catalog for a locale ("ja" or "en").
func Load(locale string) (*Catalog, error) {
	d, ok := bundled[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return New(d())
}

// Locales lists the bundled locales.
func Locales() []string {
	out := make([]string, 0, len(bundled))
	for l := range bundled {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

var bundled = map[string]func() Data{
	"ja": japanese,
	"en": english,
}

// Locale returns the catalog's locale code.
func (c *Catalog) Locale() string { return c.locale }

// Items returns every vocabulary item in catalog order.
func (c *Catalog) Items() []Item { return slices.Clone(c.items) }

// Len returns the number of vocabulary items.
func (c *Catalog) Len() int { return len(c.items) }

// Item looks up a vocabulary item by word.
func (c *Catalog) Item(word string) (Item, bool) {
	it, ok := c.itemByWord[word]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Has reports whether word is in the catalog.
func (c *Catalog) Has(word string) bool {
	_, ok := c.itemByWord[word]
	return ok
}

// Morpheme looks up a morpheme by ID.
func (c *Catalog) Morpheme(id string) (Morpheme, bool) {
	m, ok := c.morphemeByID[id]
	if !ok {
		return Morpheme{}, false
	}
	return *m, true
}

// Morphemes returns all morphemes of the given kind in catalog order.
func (c *Catalog) Morphemes(kind MorphemeKind) []Morpheme {
	var out []Morpheme
	for _, m := range c.morphemes {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// Levels returns the learning path in unlock order.
func (c *Catalog) Levels() []Level { return slices.Clone(c.levels) }

// Level looks up a path level, a core level or the review pseudo-level's template.
func (c *Catalog) Level(id string) (Level, bool) {
	if l, ok := c.levelByID[id]; ok {
		return *l, true
	}
	if strings.HasPrefix(id, CoreLevelPrefix) {
		for _, l := range c.CoreLevels() {
			if l.ID == id {
				return l, true
			}
		}
	}
	return Level{}, false
}

// IsPathLevel reports whether id is one of the fixed learning path levels.
func (c *Catalog) IsPathLevel(id string) bool {
	_, ok := c.levelByID[id]
	return ok
}

// FirstLevel returns the level that starts unlocked.
func (c *Catalog) FirstLevel() Level { return c.levels[0] }

// Predecessor returns the level whose completion unlocks id.
func (c *Catalog) Predecessor(id string) (string, bool) {
	p, ok := c.predecessor[id]
	return p, ok
}

// LevelItems resolves a level's words to items, in level order.
// A word missing from the catalog is a DataIntegrityError.
func (c *Catalog) LevelItems(l Level) ([]Item, error) {
	if len(l.Words) == 0 {
		return nil, integrityErr(c.locale, "level %q has no words", l.ID)
	}
	out := make([]Item, 0, len(l.Words))
	for _, w := range l.Words {
		it, ok := c.itemByWord[w]
		if !ok {
			return nil, integrityErr(c.locale, "level %q references word %q absent from the catalog", l.ID, w)
		}
		out = append(out, *it)
	}
	return out, nil
}

// ReviewLevel builds the review pseudo-level over a snapshot of weak words.
func (c *Catalog) ReviewLevel(words []string) Level {
	return Level{
		ID:    ReviewLevelID,
		Title: c.templates.ReviewTitle,
		Words: slices.Clone(words),
		Kind:  LevelReview,
	}
}

// Prompt renders the quiz prompt for a meaning.
func (c *Catalog) Prompt(meaning string) string {
	return fmt.Sprintf(c.templates.Prompt, meaning)
}

// Explanation renders the quiz explanation for a gloss.
func (c *Catalog) Explanation(gloss string) string {
	return fmt.Sprintf(c.templates.Explanation, gloss)
}
