package font

import (
	"errors"
	"fmt"
	"unicode"
)

// SpaceIndex is the cell of the blank glyph. Render falls back to it for
// characters the table does not cover.
const SpaceIndex = 26

// ErrUnsupported is returned by Index for characters outside the alphabet.
var ErrUnsupported = errors.New("unsupported character")

// index maps every supported (uppercase) character to its cell.
var index = func() map[rune]int {
	m := map[rune]int{
		' ': SpaceIndex,
		'@': 27,
		'_': 28,
		'-': 29,
	}
	for r := 'A'; r <= 'Z'; r++ {
		m[r] = int(r - 'A')
	}
	for r := '0'; r <= '9'; r++ {
		m[r] = 31 + int(r-'0')
	}
	return m
}()

// Index resolves a character to its cell in the font table. Letters are
// matched case-insensitively.
func Index(r rune) (int, error) {
	if i, ok := index[unicode.ToUpper(r)]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupported, r)
}

// alphabet returns the supported characters in cell order.
func alphabet() []rune {
	out := make([]rune, Cells)
	for r, i := range index {
		out[i] = r
	}
	// The reserved cell has no character.
	return append(out[:30:30], out[31:]...)
}
