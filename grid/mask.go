package grid

import "strings"

// Mask is a boolean overlay with the dimensions of a Grid, indexed
// mask[row][col].
type Mask [][]bool

// NewMask returns an all-false Mask of the given size.
func NewMask(width, height int) Mask {
	m := make(Mask, height)
	for r := range m {
		m[r] = make([]bool, width)
	}
	return m
}

// Set marks p. It panics if p is outside the mask.
func (m Mask) Set(p Position) {
	m[p.Row][p.Col] = true
}

// Has reports whether p is marked. Positions outside the mask are unmarked.
func (m Mask) Has(p Position) bool {
	if p.Row < 0 || p.Row >= len(m) || p.Col < 0 || p.Col >= len(m[p.Row]) {
		return false
	}
	return m[p.Row][p.Col]
}

// Count returns the number of marked cells.
func (m Mask) Count() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Fits reports whether m has exactly the dimensions of g.
func (m Mask) Fits(g *Grid) bool {
	if len(m) != g.Height {
		return false
	}
	for _, row := range m {
		if len(row) != g.Width {
			return false
		}
	}
	return true
}

// Render draws the mask using on for marked cells and off otherwise.
func (m Mask) Render(on, off byte) string {
	lines := make([]string, len(m))
	for r, row := range m {
		b := make([]byte, len(row))
		for c, v := range row {
			if v {
				b[c] = on
			} else {
				b[c] = off
			}
		}
		lines[r] = string(b)
	}
	return strings.Join(lines, "\n")
}
