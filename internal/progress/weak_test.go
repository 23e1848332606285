package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeakWords_InsertNoDuplicates(t *testing.T) {
	var w WeakWords
	for _, word := range []string{"permit", "export", "permit", "review", "export", "permit"} {
		w.Insert(word)
	}
	assert.Equal(t, WeakWords{"permit", "export", "review"}, w)
}

func TestWeakWords_InsertReportsAdded(t *testing.T) {
	var w WeakWords
	assert.True(t, w.Insert("permit"))
	assert.False(t, w.Insert("permit"))
}

func TestWeakWords_ReviewAvailable(t *testing.T) {
	w := WeakWords{"a", "b"}
	assert.False(t, w.ReviewAvailable())

	w.Insert("c")
	assert.True(t, w.ReviewAvailable())
}

func TestWeakWords_SnapshotIsolated(t *testing.T) {
	w := WeakWords{"a", "b", "c"}
	snap := w.Snapshot()

	w.Insert("d")
	w.Clear()

	assert.Equal(t, []string{"a", "b", "c"}, snap)
	assert.Zero(t, w.Len())
	assert.NotNil(t, w)
}
