package tracer_test

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/tracer"
)

// ExampleTraceLoop traces a small winding loop and reports how far the
// farthest loop cell is from the start, along with the hidden start shape.
func ExampleTraceLoop() {
	g, _ := grid.Parse(`
		..F7.
		.FJ|.
		SJ.L7
		|F--J
		LJ...`)

	loop, err := tracer.TraceLoop(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("length:", loop.Length())
	fmt.Println("farthest:", loop.Farthest())
	fmt.Println("start:", loop.Start, loop.StartShape)
	fmt.Println(loop.Mask.Render('#', '.'))

	// Output:
	// length: 16
	// farthest: 8
	// start: 2,0 F
	// ..##.
	// .###.
	// ##.##
	// #####
	// ##...
}
