package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/etymquest/internal/quiz"
	"github.com/abhisek/etymquest/internal/ui/theme"
)

// QuizCard renders one question with numbered options. Once a verdict is
// attached the correct option is marked, along with the learner's choice
// when it was wrong.
type QuizCard struct {
	Quiz    *quiz.Quiz
	Verdict *quiz.Verdict
}

// NewQuizCard creates a card for q.
func NewQuizCard(q *quiz.Quiz) QuizCard {
	return QuizCard{Quiz: q}
}

// WithVerdict returns the card showing v's feedback.
func (c QuizCard) WithVerdict(v quiz.Verdict) QuizCard {
	c.Verdict = &v
	return c
}

// View renders the card.
func (c QuizCard) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(c.Quiz.Prompt))
	b.WriteString("\n\n")

	for i, opt := range c.Quiz.Options {
		line := fmt.Sprintf("  %d)  %s", i+1, opt)
		switch {
		case c.Verdict == nil:
			line = theme.Body.Render(line)
		case opt == c.Verdict.Answer:
			line = theme.Correct.Render(line + "  ✓")
		case opt == c.Verdict.Selected:
			line = theme.Incorrect.Render(line + "  ✗")
		default:
			line = theme.Subtitle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if c.Verdict != nil {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(c.Verdict.Explanation))
		b.WriteString("\n")
	}
	return b.String()
}
