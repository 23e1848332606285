package components

import (
	"strings"

	"github.com/abhisek/etymquest/internal/story"
	"github.com/abhisek/etymquest/internal/ui/theme"
)

// StoryText renders story segments with the keywords emphasized.
func StoryText(segments []story.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Keyword {
			b.WriteString(theme.Keyword.Render(s.Text))
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}
