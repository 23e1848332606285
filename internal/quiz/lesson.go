package quiz

import (
	"github.com/abhisek/etymquest/internal/catalog"
)

// LevelThreshold is the number of correct answers that completes an ordinary
// level. Review requires one correct answer per weak word instead.
const LevelThreshold = 3

// Threshold returns the correct-answer count needed to complete l.
func Threshold(l catalog.Level) int {
	if l.Kind == catalog.LevelReview {
		return len(l.Words)
	}
	return LevelThreshold
}

// Lesson walks the words of one level, presenting a quiz per word until the
// threshold of correct answers is reached. A wrong answer re-presents the same
// question; a right one advances to the next word.
type Lesson struct {
	Level     catalog.Level
	items     []catalog.Item
	catalog   *catalog.Catalog
	gen       *Generator
	eval      Evaluator
	index     int
	correct   int
	needed    int
	advance   bool
	completed bool
}

// NewLesson resolves the level's words and prepares the first question.
// A level word missing from the catalog is a DataIntegrityError.
func NewLesson(l catalog.Level, c *catalog.Catalog, gen *Generator) (*Lesson, error) {
	items, err := c.LevelItems(l)
	if err != nil {
		return nil, err
	}
	ls := &Lesson{
		Level:   l,
		items:   items,
		catalog: c,
		gen:     gen,
		needed:  Threshold(l),
	}
	if err := ls.present(); err != nil {
		return nil, err
	}
	return ls, nil
}

// Question returns the question currently on screen.
func (ls *Lesson) Question() *Quiz { return ls.eval.Current() }

// Locked reports whether the current question is awaiting Next.
func (ls *Lesson) Locked() bool { return ls.eval.Locked() }

// Submit judges an answer. A repeated submission before Next returns
// ErrAnswerLocked and changes nothing.
func (ls *Lesson) Submit(option string) (Verdict, error) {
	v, err := ls.eval.Submit(option)
	if err != nil {
		return v, err
	}
	if v.Correct {
		ls.correct++
		ls.advance = true
		if ls.correct >= ls.needed {
			ls.completed = true
		}
	}
	return v, nil
}

// Next presents the following question once feedback has been shown. After a
// correct answer the lesson moves to the next word; after a wrong one the same
// question comes back.
func (ls *Lesson) Next() (*Quiz, error) {
	if ls.completed {
		return nil, nil
	}
	if !ls.advance {
		ls.eval.Present(ls.eval.Current())
		return ls.eval.Current(), nil
	}
	ls.index++
	ls.advance = false
	if err := ls.present(); err != nil {
		return nil, err
	}
	return ls.eval.Current(), nil
}

// Progress returns the correct answers so far and the number required.
func (ls *Lesson) Progress() (correct, needed int) { return ls.correct, ls.needed }

// Complete reports whether the threshold has been reached.
func (ls *Lesson) Complete() bool { return ls.completed }

func (ls *Lesson) present() error {
	target := ls.items[ls.index%len(ls.items)]
	q, err := ls.gen.Generate(target, ls.catalog)
	if err != nil {
		return err
	}
	ls.eval.Present(q)
	return nil
}
