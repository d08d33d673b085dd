// Package tile defines the closed vocabulary of a pipe maze: the eight tile
// symbols, the four cardinal directions, and the pure functions that connect
// them.
//
// What:
//
//   - Tile: one of | - L J 7 F . S (vertical, horizontal, four elbows,
//     ground, start marker).
//   - Direction: Up, Down, Left, Right with unit (row, col) deltas.
//   - Next: the pipe state machine. Given a tile and the direction of travel
//     entering it, returns the direction of travel leaving it, or ok=false
//     when the tile does not accept that entry.
//   - ResolveStart: recovers the shape hidden under the start marker from the
//     direction a loop leaves it and the direction it re-enters it.
//   - Crosses: decides whether a pair of elbows closing a horizontal run on a
//     scanline is one boundary crossing or a U-turn.
//
// Why:
//
//   - Every table is a switch over closed enums, so a missing case is visible
//     in one place and unreachable inputs fail with a sentinel error instead
//     of being silently misread.
//
// Complexity:
//
//   - All operations are O(1) with no allocation.
//
// Errors:
//
//   - ErrUnknownTile:    rune is not a tile symbol.
//   - ErrBadStartShape:  leave/enter pair does not describe a pipe shape.
//   - ErrUnpairedCorner: elbow pair cannot close a horizontal run.
package tile
