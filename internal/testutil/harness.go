package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/blockart/internal/config"
	"github.com/specialistvlad/blockart/internal/shell"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Session is a scripted shell run inside its own temporary directory.
type Session struct {
	t *testing.T
	// Dir is a temporary directory; the default save file lives in it.
	Dir      string
	Settings *config.Settings
	NoColor  bool
}

// SessionResult holds the outcome of a scripted session.
type SessionResult struct {
	Output    string
	LogOutput string
	Err       error
}

// NewSession prepares a session whose default filename points into a fresh
// temporary directory.
func NewSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	settings := config.Defaults()
	settings.DefaultFilename = filepath.Join(dir, config.DefaultFilename)
	return &Session{t: t, Dir: dir, Settings: settings}
}

// Path returns name joined onto the session directory.
func (s *Session) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Run feeds answers to the shell, one per line, and runs it to completion.
func (s *Session) Run(answers ...string) *SessionResult {
	return s.RunWithContext(context.Background(), answers...)
}

// RunWithContext is Run with a caller-provided context.
func (s *Session) RunWithContext(ctx context.Context, answers ...string) *SessionResult {
	s.t.Helper()

	input := strings.Join(answers, "\n")
	if len(answers) > 0 {
		input += "\n"
	}

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sh := shell.New(strings.NewReader(input), out, shell.Options{
		Settings: s.Settings,
		NoColor:  s.NoColor,
		Logger:   logger,
	})
	err := sh.Run(ctx)

	if os.Getenv("BLOCKART_TEST_LOGS") == "true" {
		s.t.Logf("--- Full Log Output for %s ---\n%s", s.t.Name(), logs.String())
	}

	return &SessionResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       err,
	}
}
