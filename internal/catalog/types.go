package catalog

// MorphemeKind classifies a morpheme by its position in a word.
type MorphemeKind string

const (
	KindPrefix MorphemeKind = "prefix"
	KindRoot   MorphemeKind = "root"
	KindSuffix MorphemeKind = "suffix"
)

// AllMorphemeKinds returns the kinds in dictionary display order.
func AllMorphemeKinds() []MorphemeKind {
	return []MorphemeKind{KindPrefix, KindRoot, KindSuffix}
}

// Morpheme is a prefix, root or suffix with its own etymological meaning.
type Morpheme struct {
	ID      string
	Kind    MorphemeKind
	Label   string
	Meaning string
	Origin  string // source language, e.g. "Latin"
}

// Item is a single vocabulary entry. Word is the unique key.
type Item struct {
	Word     string
	Parts    []string // morpheme IDs, in word order
	Gloss    string   // literal etymological meaning
	Meaning  string   // definition in the learner's language
	Category string
}

// LevelKind distinguishes the fixed learning path from the generated levels.
type LevelKind int

const (
	LevelPath LevelKind = iota
	LevelReview
	LevelCore
)

// String returns a short label for the level kind.
func (k LevelKind) String() string {
	switch k {
	case LevelPath:
		return "path"
	case LevelReview:
		return "review"
	case LevelCore:
		return "core"
	default:
		return "unknown"
	}
}

// Level is an ordered group of words played as one lesson.
type Level struct {
	ID      string
	Title   string
	Icon    string // root morpheme ID the level is themed on
	Words   []string
	Unlocks string // empty for the terminal level
	Kind    LevelKind
}

// ReviewLevelID is the ID of the weak-word review pseudo-level.
const ReviewLevelID = "review"

// CoreLevelPrefix prefixes the IDs of root practice levels.
const CoreLevelPrefix = "core-"

// Templates holds the locale-specific strings the engine builds quizzes with.
type Templates struct {
	Prompt      string // formatted with the item meaning
	Explanation string // formatted with the item gloss
	ReviewTitle string
	CoreTitle   string // formatted with the root label
}

// Data is the raw content for one locale, before indexing.
type Data struct {
	Locale    string
	Templates Templates
	Morphemes []Morpheme
	Items     []Item
	Levels    []Level
}
