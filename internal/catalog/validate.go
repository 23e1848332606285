package catalog

import (
	"fmt"
	"strings"
)

// validate runs the structural checks on raw locale data.
// All problems are reported together as one DataIntegrityError.
func validate(d Data) error {
	var errs []string

	if len(d.Items) == 0 {
		errs = append(errs, "catalog has no vocabulary items")
	}
	if len(d.Levels) == 0 {
		errs = append(errs, "catalog has no levels")
	}

	morphemes := make(map[string]bool, len(d.Morphemes))
	for _, m := range d.Morphemes {
		if morphemes[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate morpheme ID: %q", m.ID))
		}
		morphemes[m.ID] = true
	}

	words := make(map[string]bool, len(d.Items))
	for _, it := range d.Items {
		if it.Word == "" {
			errs = append(errs, "item with empty word")
			continue
		}
		if words[it.Word] {
			errs = append(errs, fmt.Sprintf("duplicate word: %q", it.Word))
		}
		words[it.Word] = true
		if len(it.Parts) == 0 {
			errs = append(errs, fmt.Sprintf("word %q has no morphemes", it.Word))
		}
		for _, p := range it.Parts {
			if !morphemes[p] {
				errs = append(errs, fmt.Sprintf("word %q references nonexistent morpheme %q", it.Word, p))
			}
		}
	}

	levels := make(map[string]bool, len(d.Levels))
	for _, l := range d.Levels {
		if levels[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate level ID: %q", l.ID))
		}
		levels[l.ID] = true
		if l.ID == ReviewLevelID || strings.HasPrefix(l.ID, CoreLevelPrefix) {
			errs = append(errs, fmt.Sprintf("level ID %q is reserved", l.ID))
		}
	}

	unlockedBy := make(map[string]string)
	for _, l := range d.Levels {
		if len(l.Words) == 0 {
			errs = append(errs, fmt.Sprintf("level %q has no words", l.ID))
		}
		seen := make(map[string]bool, len(l.Words))
		for _, w := range l.Words {
			if !words[w] {
				errs = append(errs, fmt.Sprintf("level %q references nonexistent word %q", l.ID, w))
			}
			if seen[w] {
				errs = append(errs, fmt.Sprintf("level %q lists word %q twice", l.ID, w))
			}
			seen[w] = true
		}
		if l.Unlocks == "" {
			continue
		}
		if !levels[l.Unlocks] {
			errs = append(errs, fmt.Sprintf("level %q unlocks nonexistent level %q", l.ID, l.Unlocks))
		}
		if prev, ok := unlockedBy[l.Unlocks]; ok {
			errs = append(errs, fmt.Sprintf("level %q is unlocked by both %q and %q", l.Unlocks, prev, l.ID))
		}
		unlockedBy[l.Unlocks] = l.ID
	}

	// The path must be a single chain starting at the first level.
	if len(d.Levels) > 0 && len(errs) == 0 {
		next := make(map[string]string, len(d.Levels))
		for _, l := range d.Levels {
			next[l.ID] = l.Unlocks
		}
		visited := make(map[string]bool, len(d.Levels))
		for id := d.Levels[0].ID; id != ""; id = next[id] {
			if visited[id] {
				errs = append(errs, fmt.Sprintf("unlock cycle at level %q", id))
				break
			}
			visited[id] = true
		}
		for _, l := range d.Levels {
			if !visited[l.ID] {
				errs = append(errs, fmt.Sprintf("level %q is unreachable from %q", l.ID, d.Levels[0].ID))
			}
		}
	}

	if len(errs) > 0 {
		return integrityErr(d.Locale, "catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
