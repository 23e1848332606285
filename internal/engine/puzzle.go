package engine

import (
	"log/slog"

	"github.com/abhisek/etymquest/internal/progress"
	"github.com/abhisek/etymquest/internal/puzzle"
)

type dailyPuzzle struct {
	day    progress.Date
	puzzle puzzle.Puzzle
}

// PuzzleResult is the outcome of a puzzle attempt.
type PuzzleResult struct {
	Solved bool
	Events []Event
}

// DailyPuzzle returns today's puzzle. The block order is fixed for the day
// within a session.
func (e *Engine) DailyPuzzle() puzzle.Puzzle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dailyPuzzleLocked()
}

func (e *Engine) dailyPuzzleLocked() puzzle.Puzzle {
	now := e.now()
	today := progress.DateOf(now)
	if e.puzzle == nil || e.puzzle.day != today {
		e.puzzle = &dailyPuzzle{
			day:    today,
			puzzle: puzzle.New(e.catalog.DailyPuzzle(now), e.gen.Rand()),
		}
	}
	return e.puzzle.puzzle
}

// SolvePuzzle checks order against today's puzzle. A correct order scores a
// point and counts a solved puzzle; a wrong one changes nothing. Each day's
// puzzle can be solved once per session.
func (e *Engine) SolvePuzzle(order []string) (PuzzleResult, error) {
	e.mu.Lock()
	res, err := e.solveLocked(order)
	e.mu.Unlock()

	e.notify(res.Events)
	return res, err
}

func (e *Engine) solveLocked(order []string) (PuzzleResult, error) {
	started, err := e.startLocked()
	if err != nil {
		return PuzzleResult{}, err
	}
	p := e.dailyPuzzleLocked()
	today := e.puzzle.day
	if e.puzzleSolved == today {
		return PuzzleResult{Events: started}, ErrPuzzleSolved
	}
	if !p.Check(order) {
		return PuzzleResult{Events: started}, nil
	}

	events, err := e.mutateLocked(func(s *progress.LearnerStats) ([]Event, error) {
		s.RecordCorrect(today)
		s.PuzzlesSolved++
		return []Event{{Kind: EventPuzzleSolved, Word: p.Item.Word}}, nil
	})
	if err != nil {
		return PuzzleResult{Events: started}, err
	}
	e.puzzleSolved = today
	e.logger.Info("puzzle solved", slog.String("word", p.Item.Word))
	return PuzzleResult{Solved: true, Events: append(started, events...)}, nil
}
