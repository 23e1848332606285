package progress

import "slices"

// ReviewThreshold is the number of weak words needed before review opens.
const ReviewThreshold = 3

// WeakWords is the insertion-ordered set of words answered incorrectly and not
// yet cleared by a review.
type WeakWords []string

// Insert appends word unless it is already present.
func (w *WeakWords) Insert(word string) bool {
	if slices.Contains(*w, word) {
		return false
	}
	*w = append(*w, word)
	return true
}

// Clear empties the set. Only review completion calls this.
func (w *WeakWords) Clear() {
	*w = WeakWords{}
}

// Contains reports whether word is in the set.
func (w WeakWords) Contains(word string) bool {
	return slices.Contains(w, word)
}

// Len returns the number of weak words.
func (w WeakWords) Len() int { return len(w) }

// ReviewAvailable reports whether enough words have accumulated for review.
func (w WeakWords) ReviewAvailable() bool {
	return len(w) >= ReviewThreshold
}

// Snapshot returns a copy that later inserts or clears do not affect.
func (w WeakWords) Snapshot() []string {
	return slices.Clone([]string(w))
}
