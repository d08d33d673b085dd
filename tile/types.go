package tile

import (
	"errors"
	"fmt"
)

// Sentinel errors for tile operations.
var (
	// ErrUnknownTile indicates a rune outside the tile alphabet.
	ErrUnknownTile = errors.New("tile: unknown tile symbol")
	// ErrBadStartShape indicates a leave/enter direction pair with no matching pipe shape.
	ErrBadStartShape = errors.New("tile: no pipe shape for start directions")
	// ErrUnpairedCorner indicates an elbow pair that cannot close a horizontal run.
	ErrUnpairedCorner = errors.New("tile: corner pair does not close a horizontal run")
)

// Tile is a single grid symbol. Its value is the byte used in the text form.
type Tile byte

const (
	Vertical   Tile = '|' // connects Up and Down
	Horizontal Tile = '-' // connects Left and Right
	NorthEast  Tile = 'L' // connects Up and Right
	NorthWest  Tile = 'J' // connects Up and Left
	SouthWest  Tile = '7' // connects Down and Left
	SouthEast  Tile = 'F' // connects Down and Right
	Ground     Tile = '.' // no pipe
	Start      Tile = 'S' // pipe of unknown shape
)

// Shapes lists the six pipe shapes in a stable order.
var Shapes = [...]Tile{Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast}

// Parse decodes a single rune. The annotation runes 'O' and 'I', used in
// hand-marked puzzles to label outside and inside cells, decode to Ground.
func Parse(r rune) (Tile, error) {
	switch r {
	case '|', '-', 'L', 'J', '7', 'F', '.', 'S':
		return Tile(r), nil
	case 'O', 'I':
		return Ground, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTile, r)
}

// String returns the text symbol.
func (t Tile) String() string {
	return string(rune(t))
}

// IsPipe reports whether t is one of the six pipe shapes.
func (t Tile) IsPipe() bool {
	_, _, ok := t.Openings()
	return ok
}

// IsElbow reports whether t connects two perpendicular openings.
func (t Tile) IsElbow() bool {
	switch t {
	case NorthEast, NorthWest, SouthWest, SouthEast:
		return true
	}
	return false
}

// Openings returns the two sides a pipe shape connects, vertical side first
// for elbows. ok is false for Ground, Start and unknown values.
func (t Tile) Openings() (a, b Direction, ok bool) {
	switch t {
	case Vertical:
		return Up, Down, true
	case Horizontal:
		return Left, Right, true
	case NorthEast:
		return Up, Right, true
	case NorthWest:
		return Up, Left, true
	case SouthWest:
		return Down, Left, true
	case SouthEast:
		return Down, Right, true
	}
	return 0, 0, false
}

// Direction is a cardinal direction of travel.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// All is the fixed order in which candidate directions are tried.
var All = [...]Direction{Up, Down, Left, Right}

// Delta returns the unit (row, col) offset of d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}
