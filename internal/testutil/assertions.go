package testutil

import (
	"strings"
	"testing"

	"github.com/specialistvlad/blockart/internal/font"
	"github.com/specialistvlad/blockart/internal/fsutil"
	"github.com/stretchr/testify/require"
)

// AssertRendered checks that the session output contains every row of the
// rendering of text, in order.
func AssertRendered(t *testing.T, result *SessionResult, text string) {
	t.Helper()

	rest := result.Output
	for i, row := range font.Render(text) {
		idx := strings.Index(rest, row)
		require.GreaterOrEqual(t, idx, 0, "row %d of %q missing from output:\n%s", i, text, result.Output)
		rest = rest[idx+len(row):]
	}
}

// AssertSavedFile checks that path holds exactly the rendering of text.
func AssertSavedFile(t *testing.T, path, text string) {
	t.Helper()

	lines, err := fsutil.ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, []string(font.Render(text)), lines)
}

// CountOccurrences returns how many times substr appears in the output.
func CountOccurrences(result *SessionResult, substr string) int {
	return strings.Count(result.Output, substr)
}
