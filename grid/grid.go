package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pipemaze/tile"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(cells [][]tile.Tile) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	return &Grid{Width: w, Height: h, cells: clone(cells)}, nil
}

// Parse builds a Grid from text with one line per row. Surrounding
// whitespace on each line is trimmed and blank lines are skipped, so indented
// literals and trailing newlines are accepted.
func Parse(text string) (*Grid, error) {
	return ParseLines(strings.Split(text, "\n"))
}

// ParseLines builds a Grid from one string per row, with the same trimming
// rules as Parse. An unknown symbol is reported with its position.
func ParseLines(lines []string) (*Grid, error) {
	var cells [][]tile.Tile
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]tile.Tile, 0, len(line))
		for col, r := range []rune(line) {
			t, err := tile.Parse(r)
			if err != nil {
				return nil, fmt.Errorf("grid: row %d col %d: %w", len(cells), col, err)
			}
			row = append(row, t)
		}
		cells = append(cells, row)
	}
	return New(cells)
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the tile at p. It panics if p is out of bounds; callers check
// InBounds first.
func (g *Grid) At(p Position) tile.Tile {
	return g.cells[p.Row][p.Col]
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) []tile.Tile {
	out := make([]tile.Tile, g.Width)
	copy(out, g.cells[r])
	return out
}

// Find returns the first position holding t in row-major order.
func (g *Grid) Find(t tile.Tile) (Position, bool) {
	for r, row := range g.cells {
		for c, v := range row {
			if v == t {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// With returns a new Grid equal to g except that p holds t.
// g itself is not modified.
func (g *Grid) With(p Position, t tile.Tile) (*Grid, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	cells := clone(g.cells)
	cells[p.Row][p.Col] = t
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}, nil
}

// Index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.Width, Col: idx % g.Width}
}

// Rows returns the text form of each row.
func (g *Grid) Rows() []string {
	out := make([]string, g.Height)
	for r, row := range g.cells {
		b := make([]byte, len(row))
		for c, t := range row {
			b[c] = byte(t)
		}
		out[r] = string(b)
	}
	return out
}

// String returns the text form, rows separated by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

func clone(cells [][]tile.Tile) [][]tile.Tile {
	out := make([][]tile.Tile, len(cells))
	for r := range cells {
		out[r] = make([]tile.Tile, len(cells[r]))
		copy(out[r], cells[r])
	}
	return out
}
