package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/etymquest/internal/catalog"
	"github.com/abhisek/etymquest/internal/puzzle"
)

// setup isolates config discovery and returns a fresh database path.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, env := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"ETYMQUEST_LOCALE", "ETYMQUEST_LLM_API_KEY", "ETYMQUEST_DB_PATH", "ETYMQUEST_STORY_PROXY_URL",
	} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	t.Setenv("ETYMQUEST_LLM_PROVIDER", "mock")
	return filepath.Join(dir, "etymquest.db")
}

// resetFlags restores every flag to its default; cobra keeps parsed values
// between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, db, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--db", db, "--locale", "en"}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	db := setup(t)
	out, err := run(t, db, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "etymquest (devel)\n", out)
}

func TestLevels_FreshProfile(t *testing.T) {
	db := setup(t)
	out, err := run(t, db, "", "levels")
	require.NoError(t, err)
	assert.Contains(t, out, "level1")
	assert.Contains(t, out, `The "Carry" Group`)
	assert.Contains(t, out, "▶")
	assert.Contains(t, out, "🔒")
}

func TestPlay(t *testing.T) {
	db := setup(t)

	t.Run("invalid input then quit", func(t *testing.T) {
		out, err := run(t, db, "9\nq\n", "play", "level1")
		require.NoError(t, err)
		assert.Contains(t, out, "What word means")
		assert.Contains(t, out, "Enter 1-")
		assert.Contains(t, out, "Progress so far is saved.")
	})

	t.Run("locked level", func(t *testing.T) {
		_, err := run(t, db, "", "play", "level3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "locked")
	})

	t.Run("core levels", func(t *testing.T) {
		out, err := run(t, db, "", "play", "--core")
		require.NoError(t, err)
		assert.Contains(t, out, "Core practice")
		assert.Contains(t, out, "core-port")
	})
}

func TestStats_FreshProfile(t *testing.T) {
	db := setup(t)
	out, err := run(t, db, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily goal")
	assert.Contains(t, out, "0/10")
	assert.Contains(t, out, "First Step")
	assert.Contains(t, out, "none")
}

func TestReset(t *testing.T) {
	db := setup(t)

	_, err := run(t, db, "", "reset")
	require.Error(t, err)

	out, err := run(t, db, "", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "was reset")
}

func TestDictAndMap(t *testing.T) {
	db := setup(t)

	out, err := run(t, db, "", "dict", "carry")
	require.NoError(t, err)
	assert.Contains(t, out, "ROOT")
	assert.Contains(t, out, "port")
	assert.NotContains(t, out, "spect")

	out, err = run(t, db, "", "dict", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No entries match")

	out, err = run(t, db, "", "map", "transport")
	require.NoError(t, err)
	assert.Contains(t, out, "Etymology: to carry across")
	assert.Contains(t, out, "report")
	assert.Contains(t, out, "transmit")

	_, err = run(t, db, "", "map", "nonsense")
	require.Error(t, err)
}

func TestPuzzle_Solve(t *testing.T) {
	db := setup(t)
	cat, err := catalog.Load("en")
	require.NoError(t, err)
	item := cat.DailyPuzzle(time.Now())

	out, err := run(t, db, "1\n"+strings.Join(item.Parts, " ")+"\n", "puzzle")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily puzzle")
	assert.Contains(t, out, "use all")
	assert.Contains(t, out, "Solved! "+item.Word)

	out, err = run(t, db, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Puzzles solved: 1")
}

func TestParseOrder(t *testing.T) {
	cat, err := catalog.Load("en")
	require.NoError(t, err)
	item, ok := cat.Item("transport")
	require.True(t, ok)
	p := puzzle.Puzzle{Item: item, Blocks: []string{"port", "trans-"}}

	cases := []struct {
		input   string
		want    []string
		wantErr bool
	}{
		{"2 1", []string{"trans-", "port"}, false},
		{"trans- port", []string{"trans-", "port"}, false},
		{"TRANS- 1", []string{"trans-", "port"}, false},
		{"1", nil, true},
		{"3 1", nil, true},
		{"ex- port", nil, true},
	}
	for _, tc := range cases {
		got, err := parseOrder(cat, p, tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseOrder(%q) = %v, want error", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseOrder(%q) error: %v", tc.input, err)
			continue
		}
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestStory_MockProviderAndLLMLog(t *testing.T) {
	db := setup(t)

	out, err := run(t, db, "", "story", "level1")
	require.NoError(t, err)
	assert.Contains(t, out, "Once upon a time")
	assert.Contains(t, out, "Words in this story")
	assert.Contains(t, out, "transport: to carry across (trans- + port)")

	out, err = run(t, db, "", "llm", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "mock")
	assert.Contains(t, out, "story")

	out, err = run(t, db, "", "llm", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL")

	_, err = run(t, db, "", "story", "nope")
	require.Error(t, err)
}

func TestHistory(t *testing.T) {
	db := setup(t)

	_, err := run(t, db, "q\n", "play", "level1")
	require.NoError(t, err)

	out, err := run(t, db, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "session_started")

	out, err = run(t, db, "", "history", "--kind", "level_completed")
	require.NoError(t, err)
	assert.Contains(t, out, "No events found.")
}
