package quiz

import "errors"

var (
	// ErrNoQuestion is returned when an answer arrives before any question.
	ErrNoQuestion = errors.New("no question presented")

	// ErrAnswerLocked is returned for a submission made while the feedback for
	// the current question is still showing.
	ErrAnswerLocked = errors.New("answer already submitted for this question")
)

// Evaluate reports whether option is the quiz's answer. Matching is exact.
func Evaluate(q *Quiz, option string) bool {
	return option == q.Answer
}

// Verdict is the outcome of one submission.
type Verdict struct {
	Word        string
	Selected    string
	Correct     bool
	Answer      string
	Explanation string

	// Ignored is set when the submission arrived while feedback was showing.
	Ignored bool
}

// Evaluator judges submissions for the question currently on screen and
// ignores repeats until the next question is presented.
type Evaluator struct {
	current *Quiz
	locked  bool
}

// Present makes q the current question and reopens submissions.
func (e *Evaluator) Present(q *Quiz) {
	e.current = q
	e.locked = false
}

// Current returns the question on screen, or nil.
func (e *Evaluator) Current() *Quiz { return e.current }

// Locked reports whether the current question has already been answered.
func (e *Evaluator) Locked() bool { return e.locked }

// Submit judges option against the current question and locks it.
func (e *Evaluator) Submit(option string) (Verdict, error) {
	if e.current == nil {
		return Verdict{}, ErrNoQuestion
	}
	if e.locked {
		return Verdict{Word: e.current.Word, Selected: option, Ignored: true}, ErrAnswerLocked
	}
	e.locked = true
	return Verdict{
		Word:        e.current.Word,
		Selected:    option,
		Correct:     Evaluate(e.current, option),
		Answer:      e.current.Answer,
		Explanation: e.current.Explanation,
	}, nil
}
