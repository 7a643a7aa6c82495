package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/blockart/internal/config"
	"github.com/specialistvlad/blockart/internal/font"
	"github.com/specialistvlad/blockart/internal/palette"
)

// clearSequence homes the cursor and erases the display.
const clearSequence = "\x1b[H\x1b[2J"

// State is what the shell remembers between menu iterations.
type State struct {
	// Last is the most recent render; empty until something is rendered.
	Last font.Lines
	// Color is the color chosen for the most recent render.
	Color palette.Color
}

// Options configures a Shell.
type Options struct {
	Settings    *config.Settings
	ClearScreen bool
	NoColor     bool
	Logger      *slog.Logger
}

// Shell is the interactive menu.
type Shell struct {
	in       io.Reader
	out      io.Writer
	settings *config.Settings
	clear    bool
	noColor  bool
	logger   *slog.Logger
	renderer *font.Renderer

	lines *lineReader
}

// New returns a Shell reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Shell {
	settings := opts.Settings
	if settings == nil {
		settings = config.Defaults()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Shell{
		in:       in,
		out:      out,
		settings: settings,
		clear:    opts.ClearScreen,
		noColor:  opts.NoColor,
		logger:   logger,
		renderer: font.NewRenderer(logger),
	}
}

// Run drives the menu until the user exits or input ends, both of which
// return nil. If ctx is cancelled Run returns ctx.Err().
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.lines = newLineReader(ctx, s.in)

	st := &State{Color: palette.Choose(s.settings.DefaultColor)}
	s.logger.Debug("Shell started.", "clear_screen", s.clear, "no_color", s.noColor)

	for {
		next, err := s.step(ctx, st)
		if errors.Is(err, io.EOF) {
			s.logger.Debug("Input ended, leaving shell.")
			return nil
		}
		if err != nil {
			return err
		}
		if next == stop {
			s.logger.Debug("Shell finished.")
			return nil
		}
	}
}

type action int

const (
	again action = iota
	stop
)

// step runs one menu iteration.
func (s *Shell) step(ctx context.Context, st *State) (action, error) {
	s.clearScreen()
	s.showMenu()

	choice, err := s.ask(ctx, "Enter choice (1-8): ")
	if err != nil {
		return stop, err
	}
	s.logger.Debug("Menu choice read.", "choice", choice)

	opt, ok := lookupOption(choice)
	switch {
	case !ok:
		s.println("Invalid choice.")
	case opt.exit:
		s.println("Goodbye!")
		return stop, nil
	case opt.save:
		if err := s.saveLast(ctx, st); err != nil {
			return stop, err
		}
	default:
		rendered, err := s.renderOption(ctx, st, opt)
		if err != nil {
			return stop, err
		}
		if !rendered {
			return again, nil
		}
	}

	back, err := s.ask(ctx, "Back to menu (y/n): ")
	if err != nil {
		return stop, err
	}
	if !yes(back) {
		s.println("Exiting...")
		return stop, nil
	}
	return again, nil
}

// renderOption collects text for opt, renders it and shows the result. It
// reports false when the input was rejected and nothing was rendered.
func (s *Shell) renderOption(ctx context.Context, st *State, opt option) (bool, error) {
	c, err := s.chooseColor(ctx)
	if err != nil {
		return false, err
	}
	st.Color = c

	text, err := opt.collect(ctx, s)
	if err != nil {
		var rejected *rejectedError
		if errors.As(err, &rejected) {
			s.println(rejected.message)
			s.logger.Debug("Input rejected.", "option", opt.key, "error", rejected.err)
			return false, nil
		}
		return false, err
	}

	st.Last = s.renderer.Render(text)
	s.clearScreen()
	s.display(st.Last, st.Color)

	if s.settings.PromptSave {
		answer, err := s.ask(ctx, "Save output (y/n)? ")
		if err != nil {
			return true, err
		}
		if yes(answer) {
			if err := s.save(ctx, st.Last); err != nil {
				return true, err
			}
		}
	}
	return true, nil
}

func (s *Shell) chooseColor(ctx context.Context) (palette.Color, error) {
	s.println("\nChoose Color:")
	for _, c := range palette.All() {
		s.printf("%s - %s\n", c.Key, c.Name)
	}
	def := palette.Choose(s.settings.DefaultColor)
	answer, err := s.ask(ctx, fmt.Sprintf("Enter color number (default %s): ", def.Key))
	if err != nil {
		return palette.Color{}, err
	}
	if c, ok := palette.Lookup(answer); ok {
		return c, nil
	}
	return def, nil
}

func (s *Shell) saveLast(ctx context.Context, st *State) error {
	if len(st.Last) == 0 {
		s.println("Nothing to save.")
		return nil
	}
	return s.save(ctx, st.Last)
}

func (s *Shell) display(lines font.Lines, c palette.Color) {
	s.printf("\n\n")
	for _, l := range lines {
		if s.noColor {
			s.println(l)
		} else {
			s.println(c.Wrap(l))
		}
	}
	s.printf("\n\n")
}

func (s *Shell) clearScreen() {
	if s.clear {
		io.WriteString(s.out, clearSequence)
	}
}

// ask prints prompt and returns the trimmed answer.
func (s *Shell) ask(ctx context.Context, prompt string) (string, error) {
	io.WriteString(s.out, prompt)
	line, err := s.lines.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func yes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
