// Package font holds the 5-row block font and renders strings with it.
//
// The font is a single table of Height rows. Each row is split into
// CellWidth-column cells and cell i of every row together forms the glyph
// for character i of the alphabet: A-Z, space, '@', '_', '-', a reserved
// cell, then the digits 0-9.
package font
