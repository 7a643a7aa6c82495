package shell

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTextLength is the longest text the menu accepts for a single render.
const MaxTextLength = 15

var (
	ErrLength       = errors.New("text length out of range")
	ErrNotAlpha     = errors.New("text contains non-letters")
	ErrNotDigits    = errors.New("text contains non-digits")
	ErrNotLowercase = errors.New("text is not lowercase")
	ErrRangeFormat  = errors.New("malformed range")
	ErrRangeBounds  = errors.New("range out of bounds")
)

// Constraint restricts which characters a prompt accepts.
type Constraint int

const (
	AnyText Constraint = iota
	Letters
	Digits
	Lowercase
)

// ValidateText checks that text holds 1 to limit characters that satisfy c.
func ValidateText(text string, limit int, c Constraint) error {
	if n := utf8.RuneCountInString(text); n < 1 || n > limit {
		return fmt.Errorf("%w: got %d characters, want 1 to %d", ErrLength, n, limit)
	}

	switch c {
	case Letters:
		if !all(text, unicode.IsLetter) {
			return ErrNotAlpha
		}
	case Digits:
		if !all(text, isASCIIDigit) {
			return ErrNotDigits
		}
	case Lowercase:
		if !isLower(text) {
			return ErrNotLowercase
		}
	}
	return nil
}

// ExpandRange turns a letter range such as "A-D" into "ABCD". Letters are
// case-insensitive; the result is uppercase and at most MaxTextLength long.
func ExpandRange(spec string) (string, error) {
	spec = strings.ToUpper(strings.TrimSpace(spec))
	if len(spec) != 3 || spec[1] != '-' || !isASCIIUpper(rune(spec[0])) || !isASCIIUpper(rune(spec[2])) {
		return "", fmt.Errorf("%w: %q, want LETTER-LETTER", ErrRangeFormat, spec)
	}

	start, end := spec[0], spec[2]
	if start > end {
		return "", fmt.Errorf("%w: %c comes after %c", ErrRangeBounds, start, end)
	}
	if n := int(end-start) + 1; n > MaxTextLength {
		return "", fmt.Errorf("%w: %d letters, at most %d allowed", ErrRangeBounds, n, MaxTextLength)
	}

	var sb strings.Builder
	for c := start; c <= end; c++ {
		sb.WriteByte(c)
	}
	return sb.String(), nil
}

func all(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

// isLower reports whether s has at least one cased letter and no uppercase
// or titlecase ones. Digits, spaces and punctuation are allowed.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r), unicode.IsTitle(r):
			return false
		case unicode.IsLower(r):
			cased = true
		}
	}
	return cased
}
