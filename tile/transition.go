package tile

import "fmt"

// Next returns the direction of travel after entering t while moving in
// direction in. ok is false when t has no opening facing the entry, which
// includes every direction for Ground and Start.
//
// Entering a tile while moving Down means arriving through its Up opening,
// so an elbow redirects to its other opening:
//
//	L: Down→Right, Left→Up
//	J: Down→Left,  Right→Up
//	7: Up→Left,    Right→Down
//	F: Up→Right,   Left→Down
func Next(t Tile, in Direction) (out Direction, ok bool) {
	switch t {
	case Vertical:
		if in == Up || in == Down {
			return in, true
		}
	case Horizontal:
		if in == Left || in == Right {
			return in, true
		}
	case NorthEast:
		switch in {
		case Down:
			return Right, true
		case Left:
			return Up, true
		}
	case NorthWest:
		switch in {
		case Down:
			return Left, true
		case Right:
			return Up, true
		}
	case SouthWest:
		switch in {
		case Up:
			return Left, true
		case Right:
			return Down, true
		}
	case SouthEast:
		switch in {
		case Up:
			return Right, true
		case Left:
			return Down, true
		}
	}
	return 0, false
}

// ResolveStart returns the pipe shape of a start cell whose loop leaves in
// direction leaving and comes back while travelling in direction entering.
// The shape opens toward leaving and toward entering.Opposite(); a pair where
// those coincide has no shape and yields ErrBadStartShape.
func ResolveStart(leaving, entering Direction) (Tile, error) {
	switch leaving {
	case Up:
		switch entering {
		case Up:
			return Vertical, nil
		case Left:
			return NorthEast, nil
		case Right:
			return NorthWest, nil
		}
	case Down:
		switch entering {
		case Down:
			return Vertical, nil
		case Left:
			return SouthEast, nil
		case Right:
			return SouthWest, nil
		}
	case Right:
		switch entering {
		case Right:
			return Horizontal, nil
		case Down:
			return NorthEast, nil
		case Up:
			return SouthEast, nil
		}
	case Left:
		switch entering {
		case Left:
			return Horizontal, nil
		case Down:
			return NorthWest, nil
		case Up:
			return SouthWest, nil
		}
	}
	return 0, fmt.Errorf("%w: leaving %s, entering %s", ErrBadStartShape, leaving, entering)
}

// Crosses decides how a horizontal run of loop cells on a scanline, opened by
// elbow opening and closed by elbow closing, affects inside/outside parity.
//
// Scanning left to right a run can only open with L or F and close with J or
// 7. A run whose ends bend to opposite vertical sides (L…7, F…J) is one
// boundary crossing; a run whose ends bend to the same side (L…J, F…7) is a
// U-turn and is not. Every other pair is ErrUnpairedCorner.
func Crosses(opening, closing Tile) (bool, error) {
	switch opening {
	case NorthEast:
		switch closing {
		case SouthWest:
			return true, nil
		case NorthWest:
			return false, nil
		}
	case SouthEast:
		switch closing {
		case NorthWest:
			return true, nil
		case SouthWest:
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: %s…%s", ErrUnpairedCorner, opening, closing)
}
