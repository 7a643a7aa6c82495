package hcl

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/blockart/internal/config"
	"github.com/specialistvlad/blockart/internal/ctxlog"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// writeFiles writes name->content pairs under a fresh temp dir and returns it.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return dir
}

func boolPtr(b bool) *bool { return &b }

func TestLoad(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		files map[string]string
		want  *config.Settings
	}{
		{
			name:  "no files keeps defaults",
			files: map[string]string{},
			want:  config.Defaults(),
		},
		{
			name: "all attributes",
			files: map[string]string{
				"main.hcl": `
					settings {
						default_filename = "banner.txt"
						default_color    = color.cyan
						clear_screen     = false
						prompt_save      = false
					}
				`,
			},
			want: &config.Settings{
				DefaultFilename: "banner.txt",
				DefaultColor:    "6",
				ClearScreen:     boolPtr(false),
				PromptSave:      false,
			},
		},
		{
			name: "color by key and by name",
			files: map[string]string{
				"a.hcl": `settings { default_color = "3" }`,
				"b.hcl": `settings { default_color = "Yellow" }`,
			},
			want: &config.Settings{
				DefaultFilename: config.DefaultFilename,
				DefaultColor:    "4",
				PromptSave:      true,
			},
		},
		{
			name: "later blocks override per attribute",
			files: map[string]string{
				"a.hcl": `
					settings {
						default_filename = "first.txt"
						clear_screen     = true
					}
				`,
				"nested/b.hcl": `settings { default_filename = "second.txt" }`,
			},
			want: &config.Settings{
				DefaultFilename: "second.txt",
				DefaultColor:    "1",
				ClearScreen:     boolPtr(true),
				PromptSave:      true,
			},
		},
		{
			name: "string bool is converted",
			files: map[string]string{
				"main.hcl": `settings { prompt_save = "false" }`,
			},
			want: &config.Settings{
				DefaultFilename: config.DefaultFilename,
				DefaultColor:    "1",
				PromptSave:      false,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			dir := writeFiles(t, tc.files)

			// --- Act ---
			got, err := NewLoader().Load(testContext(), dir)

			// --- Assert ---
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		errPart string
	}{
		{"syntax error", `settings {`, "failed to parse HCL file"},
		{"unknown block", `font "big" {}`, "failed to decode HCL file"},
		{"unknown attribute", `settings { width = 7 }`, `unsupported settings attribute "width"`},
		{"unknown color", `settings { default_color = "purple" }`, `unknown color "purple"`},
		{"unknown color variable", `settings { default_color = color.purple }`, "failed to apply settings"},
		{"empty filename", `settings { default_filename = "  " }`, "must not be empty"},
		{"wrong type", `settings { clear_screen = [1, 2] }`, "invalid clear_screen"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := writeFiles(t, map[string]string{"main.hcl": tc.content})

			_, err := NewLoader().Load(testContext(), dir)

			require.Error(t, err)
			require.ErrorContains(t, err, tc.errPart)
		})
	}
}

func TestLoad_PathHandling(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"settings.conf": `settings { default_filename = "explicit.txt" }`,
		"ignored.txt":   `this is not hcl`,
	})

	// A missing path is skipped and a file path is read whatever its extension.
	got, err := NewLoader().Load(testContext(),
		filepath.Join(dir, "does-not-exist.hcl"),
		filepath.Join(dir, "settings.conf"),
	)
	require.NoError(t, err)
	require.Equal(t, "explicit.txt", got.DefaultFilename)

	// Directories only contribute .hcl files.
	got, err = NewLoader().Load(testContext(), dir)
	require.NoError(t, err)
	require.Equal(t, config.DefaultFilename, got.DefaultFilename)
}
