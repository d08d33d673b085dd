package tile_test

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/tile"
)

// ExampleNext follows a walker moving right into a 7 elbow: it arrives
// through the left opening and turns down.
func ExampleNext() {
	out, ok := tile.Next(tile.SouthWest, tile.Right)
	fmt.Println(out, ok)

	_, ok = tile.Next(tile.SouthWest, tile.Left)
	fmt.Println(ok)

	// Output:
	// down true
	// false
}

// ExampleResolveStart recovers the start shape of a loop that leaves upward
// and comes back travelling left, i.e. from the right-hand neighbour.
func ExampleResolveStart() {
	shape, _ := tile.ResolveStart(tile.Up, tile.Left)
	fmt.Println(shape)

	// Output:
	// L
}
