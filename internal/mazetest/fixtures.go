package mazetest

// Maze is a reference puzzle together with its expected answers.
type Maze struct {
	Name     string
	Text     string
	Length   int // cells on the loop
	Farthest int
	Enclosed int
}

// Winding is a 16-cell loop twisting through ground. S hides an F; the
// single ground cell in the middle is boxed in by the loop.
var Winding = Maze{
	Name: "winding",
	Text: `
	..F7.
	.FJ|.
	SJ.L7
	|F--J
	LJ...`,
	Length:   16,
	Farthest: 8,
	Enclosed: 1,
}

// Square is an 8-cell ring around one ground cell.
var Square = Maze{
	Name: "square",
	Text: `
	.....
	.S-7.
	.|.|.
	.L-J.
	.....`,
	Length:   8,
	Farthest: 4,
	Enclosed: 1,
}

// Tight is a loop hugging the border with nothing inside it.
var Tight = Maze{
	Name: "tight",
	Text: `
	S-7
	L-J`,
	Length:   6,
	Farthest: 3,
	Enclosed: 0,
}

// Nested is two rectangles joined at the bottom. O and I annotate outside
// and inside ground cells.
var Nested = Maze{
	Name: "nested",
	Text: `
	..........
	.S------7.
	.|F----7|.
	.||OOOO||.
	.||OOOO||.
	.|L-7F-J|.
	.|II||II|.
	.L--JL--J.
	..........`,
	Length:   44,
	Farthest: 22,
	Enclosed: 4,
}

// Cluttered is a loop with unconnected pipe clutter inside and outside it.
var Cluttered = Maze{
	Name: "cluttered",
	Text: `
	.F----7F7F7F7F-7....
	.|F--7||||||||FJ....
	.||.FJ||||||||L7....
	FJL7L7LJLJ||LJ.L-7..
	L--J.L7...LJS7F-7L7.
	....F-J..F7FJ|L7L7L7
	....L7.F7||L7|.L7L7|
	.....|FJLJ|FJ|F7|.LJ
	....FJL-7.||.||||...
	....L---J.LJ.LJLJ...`,
	Length:   140,
	Farthest: 70,
	Enclosed: 8,
}

// All lists every reference maze.
var All = []Maze{Winding, Square, Tight, Nested, Cluttered}
