// Package palette defines the fixed set of terminal colors rendered text can
// be printed in.
package palette

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
)

// Color is one palette entry.
type Color struct {
	Key  string
	Name string
	fg   color.Color
}

// Code returns the SGR parameter of the color, e.g. "97".
func (c Color) Code() string {
	return c.fg.Code()
}

// Wrap surrounds line with the color's escape sequence and a reset.
func (c Color) Wrap(line string) string {
	return fmt.Sprintf(color.FullColorTpl, c.Code(), line)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Name
}

var entries = []Color{
	{Key: "1", Name: "White", fg: color.FgLightWhite},
	{Key: "2", Name: "Red", fg: color.FgLightRed},
	{Key: "3", Name: "Green", fg: color.FgLightGreen},
	{Key: "4", Name: "Yellow", fg: color.FgLightYellow},
	{Key: "5", Name: "Blue", fg: color.FgLightBlue},
	{Key: "6", Name: "Cyan", fg: color.FgLightCyan},
}

// All returns the palette in menu order.
func All() []Color {
	out := make([]Color, len(entries))
	copy(out, entries)
	return out
}

// Default returns White.
func Default() Color {
	return entries[0]
}

// Lookup finds a color by menu key ("3") or by name ("green", any case).
func Lookup(key string) (Color, bool) {
	key = strings.TrimSpace(key)
	for _, c := range entries {
		if c.Key == key || strings.EqualFold(c.Name, key) {
			return c, true
		}
	}
	return Color{}, false
}

// Choose is Lookup with a fallback to Default for unknown keys.
func Choose(key string) Color {
	if c, ok := Lookup(key); ok {
		return c
	}
	return Default()
}
