package font

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lines is the rendered form of a string: exactly Height rows of equal width.
type Lines []string

// Width returns the column count of the rendered rows.
func (l Lines) Width() int {
	if len(l) == 0 {
		return 0
	}
	return utf8.RuneCountInString(l[0])
}

// Render draws text with the block font. Every character produces one
// CellWidth-wide cell per row; characters without a glyph are drawn as a
// space.
func Render(text string) Lines {
	return render(text, nil)
}

func render(text string, onMissing func(pos int, r rune)) Lines {
	cells := cellIndexes(text, onMissing)

	lines := make(Lines, Height)
	for y := range Height {
		var sb strings.Builder
		sb.Grow(len(cells) * CellWidth)
		for _, i := range cells {
			sb.WriteString(Cell(y, i))
		}
		lines[y] = sb.String()
	}
	return lines
}

// cellIndexes resolves each rune of text. Uppercasing happens per rune so
// that one input character always yields one cell. onMissing, if set, is
// called for every substituted character.
func cellIndexes(text string, onMissing func(pos int, r rune)) []int {
	cells := make([]int, 0, utf8.RuneCountInString(text))
	pos := 0
	for _, r := range text {
		i, err := Index(unicode.ToUpper(r))
		if err != nil {
			if onMissing != nil {
				onMissing(pos, r)
			}
			i = SpaceIndex
		}
		cells = append(cells, i)
		pos++
	}
	return cells
}

// Renderer is Render with logging of substituted characters.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer returns a Renderer that reports to logger.
func NewRenderer(logger *slog.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render draws text like the package-level Render.
func (r *Renderer) Render(text string) Lines {
	lines := render(text, func(pos int, c rune) {
		r.logger.Debug("Substituting unsupported character with space.", "position", pos, "char", string(c))
	})
	r.logger.Debug("Rendered text.", "chars", utf8.RuneCountInString(text), "width", lines.Width())
	return lines
}
