// Package pipemaze solves pipe mazes: grids of pipe tiles in which one
// closed loop passes through an unmarked start cell.
//
// What is in the box?
//
//	tile/      Tile and Direction enums, the pipe state machine, start-shape
//	           and corner-pair tables
//	grid/      immutable rectangular Grid, Position, Mask, text parsing
//	tracer/    walks the loop from the start marker and resolves its shape
//	interior/  scanline parity count of the cells the loop encloses
//	solve/     the whole pipeline on raw text
//	cmd/pipemaze/  command-line front end
//
// Quick ASCII example:
//
//	.....
//	.S-7.     S hides an F; the loop is 8 cells long,
//	.|.|.     its farthest cell is 4 steps from S,
//	.L-J.     and it encloses the one cell in the middle.
//	.....
//
//	go get github.com/katalvlaran/pipemaze
package pipemaze
