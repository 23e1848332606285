package engine

import (
	"errors"
	"log/slog"

	"github.com/abhisek/etymquest/internal/catalog"
	"github.com/abhisek/etymquest/internal/progress"
	"github.com/abhisek/etymquest/internal/quiz"
)

// Result is the outcome of one submitted answer.
type Result struct {
	Verdict quiz.Verdict

	// Correct and Needed are the lesson's progress after this answer.
	Correct int
	Needed  int

	// LevelComplete is set on the answer that reached the threshold.
	LevelComplete bool

	// Events are the committed events, in emission order.
	Events []Event
}

// LessonState describes the lesson in progress.
type LessonState struct {
	Level    catalog.Level
	Question *quiz.Quiz
	Correct  int
	Needed   int
	Locked   bool
	Complete bool
}

// Levels returns the learning path with each level's state.
func (e *Engine) Levels() []progress.LevelStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return progress.States(e.catalog, e.stats)
}

// CoreLevels returns the always-playable practice levels.
func (e *Engine) CoreLevels() []catalog.Level {
	return e.catalog.CoreLevels()
}

// ReviewAvailable reports whether enough weak words have accumulated to
// start the review level.
func (e *Engine) ReviewAvailable() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats.WeakWords.ReviewAvailable()
}

// StartLesson begins levelID and returns its first question. The review
// level plays the weak words as they stand now; later misses do not change
// it. Any lesson already in progress is abandoned.
func (e *Engine) StartLesson(levelID string) (*quiz.Quiz, error) {
	e.mu.Lock()
	events, err := e.startLocked()
	if err != nil {
		e.mu.Unlock()
		return nil, err
	}
	q, err := e.startLessonLocked(levelID)
	e.mu.Unlock()

	e.notify(events)
	return q, err
}

func (e *Engine) startLessonLocked(levelID string) (*quiz.Quiz, error) {
	if err := progress.CheckPlayable(e.catalog, e.stats, levelID); err != nil {
		return nil, err
	}

	var level catalog.Level
	if levelID == catalog.ReviewLevelID {
		level = e.catalog.ReviewLevel(e.stats.WeakWords.Snapshot())
	} else {
		level, _ = e.catalog.Level(levelID)
	}

	ls, err := quiz.NewLesson(level, e.catalog, e.gen)
	if err != nil {
		e.logger.Error("starting lesson failed", slog.String("level", levelID), slog.Any("error", err))
		return nil, err
	}
	e.lesson = ls
	e.logger.Debug("lesson started", slog.String("level", levelID), slog.Int("words", len(level.Words)))
	return ls.Question(), nil
}

// Lesson reports the lesson in progress.
func (e *Engine) Lesson() (LessonState, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lesson == nil {
		return LessonState{}, false
	}
	correct, needed := e.lesson.Progress()
	return LessonState{
		Level:    e.lesson.Level,
		Question: e.lesson.Question(),
		Correct:  correct,
		Needed:   needed,
		Locked:   e.lesson.Locked(),
		Complete: e.lesson.Complete(),
	}, true
}

// Submit answers the current question with option. A correct answer scores
// a point and, on reaching the threshold, completes the level. A wrong one
// adds the word to the weak words. A repeat submission while feedback is
// showing is ignored and reported through Verdict.Ignored.
func (e *Engine) Submit(option string) (Result, error) {
	e.mu.Lock()
	res, err := e.submitLocked(option)
	e.mu.Unlock()

	e.notify(res.Events)
	return res, err
}

func (e *Engine) submitLocked(option string) (Result, error) {
	ls := e.lesson
	if ls == nil {
		return Result{}, ErrNoLesson
	}
	if e.closed {
		return Result{}, ErrClosed
	}

	v, err := ls.Submit(option)
	if errors.Is(err, quiz.ErrAnswerLocked) {
		correct, needed := ls.Progress()
		return Result{Verdict: v, Correct: correct, Needed: needed}, nil
	}
	if err != nil {
		return Result{}, err
	}

	levelID := ls.Level.ID
	today := progress.DateOf(e.now())

	var events []Event
	if v.Correct {
		events, err = e.mutateLocked(func(s *progress.LearnerStats) ([]Event, error) {
			s.RecordCorrect(today)
			out := []Event{{Kind: EventCorrect, LevelID: levelID, Word: v.Word, Selected: v.Selected}}
			if !ls.Complete() {
				return out, nil
			}
			t := progress.Complete(e.catalog, s, levelID)
			out = append(out, Event{Kind: EventLevelCompleted, LevelID: levelID})
			if t.Unlocked != "" {
				out = append(out, Event{Kind: EventLevelUnlocked, LevelID: t.Unlocked})
			}
			if t.ReviewCleared {
				out = append(out, Event{Kind: EventReviewCleared, LevelID: levelID})
			}
			return out, nil
		})
	} else {
		events, err = e.mutateLocked(func(s *progress.LearnerStats) ([]Event, error) {
			if e.catalog.Has(v.Word) {
				s.WeakWords.Insert(v.Word)
			}
			return []Event{{Kind: EventIncorrect, LevelID: levelID, Word: v.Word, Selected: v.Selected}}, nil
		})
	}
	if err != nil {
		return Result{}, err
	}

	correct, needed := ls.Progress()
	if ls.Complete() {
		e.logger.Info("level completed", slog.String("level", levelID))
	}
	return Result{
		Verdict:       v,
		Correct:       correct,
		Needed:        needed,
		LevelComplete: ls.Complete(),
		Events:        events,
	}, nil
}

// Next moves past the feedback to the following question. It returns nil
// once the level is complete, and the lesson ends.
func (e *Engine) Next() (*quiz.Quiz, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lesson == nil {
		return nil, ErrNoLesson
	}
	q, err := e.lesson.Next()
	if err != nil {
		return nil, err
	}
	if q == nil {
		e.lesson = nil
	}
	return q, nil
}

// EndLesson abandons the lesson in progress, if any. Progress already
// committed is kept.
func (e *Engine) EndLesson() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lesson = nil
}
