package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/blockart/internal/font"
	"github.com/specialistvlad/blockart/internal/fsutil"
)

// option is one menu entry. Render options set collect; save and exit are
// handled by the loop itself.
type option struct {
	key     string
	label   string
	collect func(ctx context.Context, s *Shell) (string, error)
	save    bool
	exit    bool
}

var options = []option{
	{key: "1", label: "One Character", collect: promptText(1, AnyText)},
	{key: "2", label: fmt.Sprintf("Word (Max %d chars)", MaxTextLength), collect: promptText(MaxTextLength, AnyText)},
	{key: "3", label: "Range (example A-D)", collect: promptRange},
	{key: "4", label: "Only Alphabets", collect: promptText(MaxTextLength, Letters)},
	{key: "5", label: "Only Numbers", collect: promptText(MaxTextLength, Digits)},
	{key: "6", label: "lowercase → UPPERCASE", collect: promptLowercase},
	{key: "7", label: "Save Previous Output", save: true},
	{key: "8", label: "Exit", exit: true},
}

func lookupOption(key string) (option, bool) {
	for _, o := range options {
		if o.key == key {
			return o, true
		}
	}
	return option{}, false
}

func (s *Shell) showMenu() {
	s.println("========= ASCII ART PROJECT =========")
	for _, o := range options {
		s.printf("%s - %s\n", o.key, o.label)
	}
	s.println("====================================")
}

// rejectedError ends an option without rendering; message is shown to the
// user.
type rejectedError struct {
	message string
	err     error
}

func (e *rejectedError) Error() string { return e.message }

func (e *rejectedError) Unwrap() error { return e.err }

func reject(err error, limit int) error {
	return &rejectedError{message: message(err, limit), err: err}
}

// message turns a validation error into the text shown to the user.
func message(err error, limit int) string {
	switch {
	case errors.Is(err, ErrLength):
		return fmt.Sprintf("Please enter between 1 and %d characters.", limit)
	case errors.Is(err, ErrNotAlpha):
		return "Only alphabets allowed."
	case errors.Is(err, ErrNotDigits):
		return "Only digits allowed."
	case errors.Is(err, ErrNotLowercase):
		return "Please enter only lowercase letters."
	case errors.Is(err, ErrRangeFormat):
		return "Invalid format."
	case errors.Is(err, ErrRangeBounds):
		return "Invalid range or too long."
	default:
		return err.Error()
	}
}

// promptText asks until the answer satisfies limit and c.
func promptText(limit int, c Constraint) func(context.Context, *Shell) (string, error) {
	return func(ctx context.Context, s *Shell) (string, error) {
		for {
			text, err := s.ask(ctx, fmt.Sprintf("Enter text (1 to %d chars): ", limit))
			if err != nil {
				return "", err
			}
			if err := ValidateText(text, limit, c); err != nil {
				s.println(message(err, limit))
				continue
			}
			return text, nil
		}
	}
}

func promptRange(ctx context.Context, s *Shell) (string, error) {
	raw, err := s.ask(ctx, "Enter range like A-D: ")
	if err != nil {
		return "", err
	}
	text, err := ExpandRange(raw)
	if err != nil {
		return "", reject(err, MaxTextLength)
	}
	return text, nil
}

func promptLowercase(ctx context.Context, s *Shell) (string, error) {
	text, err := s.ask(ctx, "Enter lowercase text: ")
	if err != nil {
		return "", err
	}
	if err := ValidateText(text, MaxTextLength, Lowercase); err != nil {
		return "", reject(err, MaxTextLength)
	}
	return strings.ToUpper(text), nil
}

// save asks for a filename and writes lines to it. Write failures are
// reported to the user and do not end the session.
func (s *Shell) save(ctx context.Context, lines font.Lines) error {
	name, err := s.ask(ctx, "Filename: ")
	if err != nil {
		return err
	}
	if name == "" {
		name = s.settings.DefaultFilename
	}

	if err := fsutil.WriteLines(name, lines); err != nil {
		s.logger.Warn("Failed to save output.", "file", name, "error", err)
		s.printf("Could not save output: %v\n", err)
		return nil
	}
	s.logger.Debug("Saved output.", "file", name, "lines", len(lines))
	s.printf("Saved output to %s\n", name)
	return nil
}
