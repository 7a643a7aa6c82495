package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLines_RoundTrip(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "ascii_output.txt")
	lines := []string{
		"*   * ***** ",
		"*   *   *   ",
		"*****   *   ",
		"*   *   *   ",
		"*   * ***** ",
	}

	// --- Act ---
	require.NoError(t, WriteLines(path, lines))
	got, err := ReadLines(path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, lines, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), raw[len(raw)-1], "file must end with a newline")
}

func TestWriteLines_Truncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteLines(path, []string{"first", "second", "third"}))
	require.NoError(t, WriteLines(path, []string{"only"}))

	got, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, got)
}

func TestWriteLines_MissingDirectory(t *testing.T) {
	t.Parallel()

	err := WriteLines(filepath.Join(t.TempDir(), "nope", "out.txt"), []string{"x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0755))
	for _, name := range []string{"b.hcl", "a.hcl", "notes.txt", "nested/c.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0644))
	}

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
	}, files)

	assert.Panics(t, func() { FindFilesByExtension(root, "") })
}
