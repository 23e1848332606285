package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BundledLocales(t *testing.T) {
	for _, locale := range Locales() {
		t.Run(locale, func(t *testing.T) {
			c, err := Load(locale)
			require.NoError(t, err)
			assert.Equal(t, locale, c.Locale())
			assert.Equal(t, 22, c.Len())
			assert.Len(t, c.Levels(), 6)
			assert.Equal(t, "level1", c.FirstLevel().ID)
		})
	}
}

func TestLoad_UnknownLocale(t *testing.T) {
	_, err := Load("fr")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

func TestLocales_SameWordSet(t *testing.T) {
	ja, err := Load("ja")
	require.NoError(t, err)
	en, err := Load("en")
	require.NoError(t, err)

	for _, it := range ja.Items() {
		assert.True(t, en.Has(it.Word), "en catalog missing %q", it.Word)
	}
	for i, l := range ja.Levels() {
		assert.Equal(t, l.Words, en.Levels()[i].Words)
	}
}

func TestNew_ValidationErrors(t *testing.T) {
	base := func() Data {
		return Data{
			Locale:    "test",
			Templates: Templates{Prompt: "%s?", Explanation: "%s"},
			Morphemes: []Morpheme{
				{ID: "re-", Kind: KindPrefix, Label: "re-"},
				{ID: "port", Kind: KindRoot, Label: "port"},
			},
			Items: []Item{{Word: "report", Parts: []string{"re-", "port"}}},
			Levels: []Level{
				{ID: "level1", Words: []string{"report"}, Unlocks: "level2"},
				{ID: "level2", Words: []string{"report"}},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Data)
		want   string
	}{
		{"empty catalog", func(d *Data) { d.Items = nil }, "no vocabulary items"},
		{"dangling morpheme", func(d *Data) { d.Items[0].Parts = []string{"re-", "portx"} }, `nonexistent morpheme "portx"`},
		{"dangling level word", func(d *Data) { d.Levels[1].Words = []string{"export"} }, `nonexistent word "export"`},
		{"dangling unlock", func(d *Data) { d.Levels[1].Unlocks = "level9" }, `nonexistent level "level9"`},
		{"unreachable level", func(d *Data) { d.Levels[0].Unlocks = "" }, "unreachable"},
		{"reserved id", func(d *Data) { d.Levels[1].ID = ReviewLevelID; d.Levels[0].Unlocks = ReviewLevelID }, "reserved"},
		{"duplicate word", func(d *Data) { d.Items = append(d.Items, d.Items[0]) }, "duplicate word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base()
			tt.mutate(&d)
			_, err := New(d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDataIntegrity))
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := New(base())
	assert.NoError(t, err)
}

func TestPredecessor(t *testing.T) {
	c, err := Load("en")
	require.NoError(t, err)

	p, ok := c.Predecessor("level2")
	require.True(t, ok)
	assert.Equal(t, "level1", p)

	_, ok = c.Predecessor("level1")
	assert.False(t, ok)
}

func TestLevelItems_MissingWord(t *testing.T) {
	c, err := Load("en")
	require.NoError(t, err)

	items, err := c.LevelItems(c.FirstLevel())
	require.NoError(t, err)
	assert.Len(t, items, 5)

	_, err = c.LevelItems(Level{ID: "x", Words: []string{"transport", "nope"}})
	assert.ErrorIs(t, err, ErrDataIntegrity)

	_, err = c.LevelItems(Level{ID: "empty"})
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestCoreLevels(t *testing.T) {
	c, err := Load("en")
	require.NoError(t, err)

	core := c.CoreLevels()
	require.NotEmpty(t, core)
	assert.Equal(t, "core-port", core[0].ID)
	assert.Equal(t, "Core: port", core[0].Title)
	assert.Equal(t, []string{"transport", "report", "portable", "export", "import"}, core[0].Words)
	for _, l := range core {
		assert.Equal(t, LevelCore, l.Kind)
		_, err := c.LevelItems(l)
		assert.NoError(t, err, l.ID)
	}

	l, ok := c.Level("core-phon")
	require.True(t, ok)
	assert.Equal(t, []string{"telephone"}, l.Words)
}

func TestSearch(t *testing.T) {
	en, err := Load("en")
	require.NoError(t, err)
	ja, err := Load("ja")
	require.NoError(t, err)

	tests := []struct {
		name string
		c    *Catalog
		term string
		want []string
	}{
		{"by meaning", en, "CARRY", []string{"port"}},
		{"by label", en, "in-", []string{"in-", "in-neg"}},
		{"japanese meaning", ja, "見る", []string{"spect", "vis"}},
		{"no match", en, "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, m := range tt.c.Search(tt.term) {
				got = append(got, m.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	all := en.Search("  ")
	require.NotEmpty(t, all)
	assert.Equal(t, KindPrefix, all[0].Kind)
	assert.Equal(t, KindSuffix, all[len(all)-1].Kind)
}

func TestRelated(t *testing.T) {
	c, err := Load("en")
	require.NoError(t, err)

	rel, err := c.Related("transport")
	require.NoError(t, err)
	require.Len(t, rel, 2)
	assert.Equal(t, "trans-", rel[0].Part.ID)
	assert.Equal(t, []string{"transmit"}, rel[0].Words)
	assert.Equal(t, "port", rel[1].Part.ID)
	assert.Equal(t, []string{"report", "portable", "export", "import"}, rel[1].Words)

	_, err = c.Related("nope")
	assert.Error(t, err)
}

func TestDailyPuzzle(t *testing.T) {
	c, err := Load("ja")
	require.NoError(t, err)

	day := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "export", c.DailyPuzzle(day).Word)

	day = time.Date(2024, 5, 23, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "report", c.DailyPuzzle(day).Word)
}

func TestPromptAndExplanation(t *testing.T) {
	ja, err := Load("ja")
	require.NoError(t, err)
	assert.Equal(t, "「輸送する」を意味する単語は？", ja.Prompt("輸送する"))
	assert.Equal(t, "語源: 横切って運ぶ", ja.Explanation("横切って運ぶ"))

	en, err := Load("en")
	require.NoError(t, err)
	assert.Equal(t, `What word means "to allow"?`, en.Prompt("to allow"))
}
