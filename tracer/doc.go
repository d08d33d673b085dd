// Package tracer finds the closed pipe loop that passes through the start
// marker of a maze and recovers the shape hidden under that marker.
//
// What:
//
//   - LocateStart: row-major scan for the start marker; the first one wins.
//   - Trace: walks from a start cell in one initial direction, following the
//     tile.Next state machine, until the walk re-enters the start cell.
//     Walking off the grid or into a tile that rejects the entry yields
//     ErrUnresolved.
//   - TraceLoop: tries Up, Down, Left, Right in that order and keeps the
//     first candidate that closes. The start shape is resolved from the
//     direction the loop leaves and the direction it comes back, and a new
//     grid with the marker replaced is returned alongside the loop.
//   - TraceAll: evaluates all four candidates and reports each outcome.
//
// A valid loop has exactly two closing candidates, one per end; both trace
// the same cycle with the same Steps. TraceLoop picks by priority order even
// when candidates run concurrently, so the resolved shape is deterministic.
//
// Options:
//
//   - WithContext: cancellation, checked once per step.
//   - WithParallel: evaluate candidates concurrently (errgroup).
//   - WithOnStep: hook invoked on every cell entered.
//   - WithLogger: zap logger for debug output; defaults to a no-op logger.
//
// Complexity:
//
//   - Trace:     O(L) time, O(W×H) memory for the mask (L = loop length).
//   - TraceLoop: at most four traces, O(W×H) time and memory.
//
// Errors:
//
//   - ErrNoStart:    grid has no start marker.
//   - ErrUnresolved: a candidate direction did not close (never returned by
//     TraceLoop).
//   - ErrNoLoop:     no candidate direction closed.
//   - tile.ErrBadStartShape: the closing walk reversed into the start cell.
//   - context errors and hook errors are propagated unchanged.
package tracer
