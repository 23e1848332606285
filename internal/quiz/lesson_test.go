package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/etymquest/internal/catalog"
)

func wrongOption(q *Quiz) string {
	for _, o := range q.Options {
		if o != q.Answer {
			return o
		}
	}
	return q.Answer + "-wrong"
}

func TestEvaluator_LockWindow(t *testing.T) {
	var e Evaluator
	_, err := e.Submit("x")
	assert.ErrorIs(t, err, ErrNoQuestion)

	q := &Quiz{Word: "permit", Options: []string{"permit", "export"}, Answer: "permit", Explanation: "e"}
	e.Present(q)

	v, err := e.Submit("permit")
	require.NoError(t, err)
	assert.True(t, v.Correct)
	assert.True(t, e.Locked())

	_, err = e.Submit("permit")
	assert.ErrorIs(t, err, ErrAnswerLocked)

	e.Present(q)
	v, err = e.Submit("export")
	require.NoError(t, err)
	assert.False(t, v.Correct)
	assert.Equal(t, "permit", v.Answer)
}

func TestEvaluate_ExactMatch(t *testing.T) {
	q := &Quiz{Answer: "permit"}
	assert.True(t, Evaluate(q, "permit"))
	assert.False(t, Evaluate(q, "Permit"))
	assert.False(t, Evaluate(q, " permit"))
}

func TestLesson_CompletesAfterThreshold(t *testing.T) {
	c, err := catalog.Load("en")
	require.NoError(t, err)
	l, _ := c.Level("level1")

	ls, err := NewLesson(l, c, seeded(3))
	require.NoError(t, err)

	var asked []string
	for i := 0; i < LevelThreshold; i++ {
		q := ls.Question()
		asked = append(asked, q.Word)
		v, err := ls.Submit(q.Answer)
		require.NoError(t, err)
		assert.True(t, v.Correct)
		_, err = ls.Submit(q.Answer)
		assert.ErrorIs(t, err, ErrAnswerLocked, "double submit must be ignored")
		_, err = ls.Next()
		require.NoError(t, err)
	}

	assert.True(t, ls.Complete())
	correct, needed := ls.Progress()
	assert.Equal(t, 3, correct)
	assert.Equal(t, 3, needed)
	assert.Equal(t, []string{"transport", "report", "portable"}, asked)
}

func TestLesson_WrongAnswerRepeatsQuestion(t *testing.T) {
	c, err := catalog.Load("en")
	require.NoError(t, err)
	l, _ := c.Level("level1")

	ls, err := NewLesson(l, c, seeded(5))
	require.NoError(t, err)

	first := ls.Question()
	v, err := ls.Submit(wrongOption(first))
	require.NoError(t, err)
	assert.False(t, v.Correct)

	again, err := ls.Next()
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.False(t, ls.Locked())

	correct, _ := ls.Progress()
	assert.Zero(t, correct)
}

func TestLesson_ShortLevelCycles(t *testing.T) {
	c, err := catalog.Load("en")
	require.NoError(t, err)
	l, _ := c.Level("level5")
	require.Len(t, l.Words, 2)

	ls, err := NewLesson(l, c, seeded(11))
	require.NoError(t, err)

	var asked []string
	for !ls.Complete() {
		q := ls.Question()
		asked = append(asked, q.Word)
		_, err := ls.Submit(q.Answer)
		require.NoError(t, err)
		_, err = ls.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"describe", "progress", "describe"}, asked)
}

func TestThreshold(t *testing.T) {
	assert.Equal(t, 3, Threshold(catalog.Level{Kind: catalog.LevelPath, Words: []string{"a"}}))
	assert.Equal(t, 3, Threshold(catalog.Level{Kind: catalog.LevelCore, Words: []string{"a", "b", "c", "d", "e"}}))
	assert.Equal(t, 4, Threshold(catalog.Level{Kind: catalog.LevelReview, Words: []string{"a", "b", "c", "d"}}))
}

func TestNewLesson_MissingWord(t *testing.T) {
	c, err := catalog.Load("en")
	require.NoError(t, err)
	_, err = NewLesson(catalog.Level{ID: "bad", Words: []string{"nope"}}, c, seeded(1))
	assert.ErrorIs(t, err, catalog.ErrDataIntegrity)
}
