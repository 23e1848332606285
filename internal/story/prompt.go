// Package story builds vocabulary stories: the prompt sent to the story
// proxy, the client that calls it, and the helpers a driver needs to show
// the result with keyword hints.
package story

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"slices"
	"strings"

	"github.com/abhisek/etymquest/internal/catalog"
)

// randomKeywordCount is the number of words drawn when no level is given.
const randomKeywordCount = 3

type localeText struct {
	prompt      string // formatted with theme and comma-joined keywords
	randomTheme string
	fallback    string
}

var texts = map[string]localeText{
	"ja": {
		prompt:      "「%s」をテーマにした、英語学習者向けの短い物語を創作してください。物語には、必ず以下の単語を自然な形で含めてください: %s。物語は150語程度の英語で記述し、物語の本文のみを返してください。",
		randomTheme: "ランダム",
		fallback:    "エラーが発生しました。時間をおいて再度お試しください。",
	},
	"en": {
		prompt:      "Write a short story for English learners on the theme \"%s\". The story must naturally include each of these words: %s. Write about 150 words of English and return only the story text.",
		randomTheme: "Random",
		fallback:    "Something went wrong. Please try again later.",
	},
}

func textFor(locale string) localeText {
	if t, ok := texts[locale]; ok {
		return t
	}
	return texts["en"]
}

// BuildPrompt returns the generation prompt for a story on theme that uses
// every keyword. An empty theme selects the locale's random theme.
func BuildPrompt(locale, theme string, keywords []string) string {
	t := textFor(locale)
	if theme == "" {
		theme = t.randomTheme
	}
	return fmt.Sprintf(t.prompt, theme, strings.Join(keywords, ", "))
}

// Keywords returns the words a story must use: the level's words, or a
// random draw from the catalog when level is nil.
func Keywords(level *catalog.Level, c *catalog.Catalog, rng *rand.Rand) []string {
	if level != nil {
		return slices.Clone(level.Words)
	}
	items := c.Items()
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	n := min(randomKeywordCount, len(items))
	out := make([]string, n)
	for i := range n {
		out[i] = items[i].Word
	}
	return out
}

// FallbackMessage is shown in place of a story when generation fails.
func FallbackMessage(locale string) string {
	return textFor(locale).fallback
}

// Hint describes a keyword as "word: gloss (part + part)". It returns false
// for words the catalog does not know.
func Hint(c *catalog.Catalog, word string) (string, bool) {
	item, ok := c.Item(strings.ToLower(word))
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s: %s (%s)", item.Word, item.Gloss, strings.Join(item.Parts, " + ")), true
}

// Segment is a run of story text. Keyword is set when the run is one of
// the story's keywords.
type Segment struct {
	Text    string
	Keyword bool
}

// Highlight splits text into plain and keyword segments. Matching ignores
// case and prefers the longest keyword at each position.
func Highlight(text string, keywords []string) []Segment {
	re := keywordPattern(keywords)
	if re == nil || text == "" {
		if text == "" {
			return nil
		}
		return []Segment{{Text: text}}
	}

	var out []Segment
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			out = append(out, Segment{Text: text[last:loc[0]]})
		}
		out = append(out, Segment{Text: text[loc[0]:loc[1]], Keyword: true})
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, Segment{Text: text[last:]})
	}
	return out
}

func keywordPattern(keywords []string) *regexp.Regexp {
	words := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k != "" {
			words = append(words, k)
		}
	}
	if len(words) == 0 {
		return nil
	}
	slices.SortFunc(words, func(a, b string) int { return len(b) - len(a) })
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(words, "|") + `)`)
}
