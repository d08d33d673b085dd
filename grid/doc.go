// Package grid holds a pipe maze as an immutable rectangular array of tiles.
//
// What:
//
//   - Grid wraps a rectangular [][]tile.Tile, deep-copied on construction.
//   - Parse / ParseLines decode the text form, one line per row.
//   - With returns a copy with a single cell replaced, leaving the receiver
//     untouched, so a resolved grid never aliases the parsed one.
//   - Mask is a boolean overlay of the same dimensions, used to mark loop
//     and enclosed cells.
//
// Coordinates are (Row, Col), 0-indexed, with Row growing downward.
//
// Complexity:
//
//   - New, Parse, With: O(W×H) time and memory.
//   - At, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    position outside the grid.
//   - tile.ErrUnknownTile (wrapped with the offending position).
package grid
