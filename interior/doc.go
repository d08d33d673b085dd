// Package interior counts the grid cells enclosed by a traced pipe loop.
//
// What:
//
//   - Classify scans each row left to right with a parity flag. A vertical
//     connector on the loop is one boundary crossing. A horizontal run of
//     loop cells is bracketed by two elbows; tile.Crosses decides whether the
//     run crosses the boundary (L…7, F…J) or turns back (L…J, F…7).
//     Horizontal connectors inside the run change nothing. Every off-loop
//     cell seen while the flag is set is enclosed.
//   - Off-loop pipes are clutter and count like ground.
//
// The scan is equivalent to casting a ray along each row and counting
// boundary crossings, with corner pairs standing in for the ambiguous case
// of a ray that runs along an edge.
//
// Classify requires the resolved grid (start marker replaced by its shape)
// and the loop mask produced by the tracer package. It reads both and writes
// neither, so repeated calls give the same result.
//
// Options:
//
//   - WithContext: cancellation, checked once per row.
//   - WithParallel: scan rows concurrently on a bounded errgroup.
//   - WithLogger:  zap logger for debug output.
//
// Complexity:
//
//   - Classify: O(W×H) time, O(W×H) memory for the enclosed mask.
//
// Errors:
//
//   - ErrMaskSize:         mask dimensions differ from the grid.
//   - ErrUnresolvedStart:  a loop cell still holds the start marker.
//   - ErrNotPipe:          a loop cell holds ground.
//   - tile.ErrUnpairedCorner: a horizontal run opened or closed with the
//     wrong elbow, or a row ended inside a run.
package interior
