package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipemaze/tile"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// Position is a (row, column) cell coordinate.
type Position struct {
	Row, Col int
}

// Step returns the neighbouring position in direction d. The result may lie
// outside any grid.
func (p Position) Step(d tile.Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Grid is an immutable rectangular array of tiles.
// Width and Height define dimensions; cells[row][col] holds the tile.
type Grid struct {
	Width, Height int
	cells         [][]tile.Tile
}
