// Package solve runs the whole pipe maze pipeline on raw text: parse the
// grid, trace the loop through the start marker, and count enclosed cells.
package solve

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/interior"
	"github.com/katalvlaran/pipemaze/tracer"
)

// Options tunes a Solve run. The zero value runs sequentially without logging.
type Options struct {
	// Parallel traces candidates and scans rows concurrently.
	Parallel bool
	// Workers bounds concurrent row scans when Parallel is set; 0 means GOMAXPROCS.
	Workers int
	// Logger receives debug output from every stage. Nil disables logging.
	Logger *zap.Logger
}

// Report is the outcome of a Solve run.
type Report struct {
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Start      string `json:"start" yaml:"start"`
	StartShape string `json:"start_shape" yaml:"start_shape"`
	LoopLength int    `json:"loop_length" yaml:"loop_length"`
	Farthest   int    `json:"farthest" yaml:"farthest"`
	Enclosed   int    `json:"enclosed" yaml:"enclosed"`
}

// Solve parses text and answers both questions about the maze.
func Solve(ctx context.Context, text string, opts Options) (*Report, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	topts := []tracer.Option{tracer.WithContext(ctx), tracer.WithLogger(opts.Logger)}
	iopts := []interior.Option{interior.WithContext(ctx), interior.WithLogger(opts.Logger)}
	if opts.Parallel {
		topts = append(topts, tracer.WithParallel())
		iopts = append(iopts, interior.WithParallel(opts.Workers))
	}

	loop, err := tracer.TraceLoop(g, topts...)
	if err != nil {
		return nil, err
	}
	enclosed, err := interior.Count(loop.Resolved, loop.Mask, iopts...)
	if err != nil {
		return nil, err
	}

	return &Report{
		Width:      g.Width,
		Height:     g.Height,
		Start:      loop.Start.String(),
		StartShape: loop.StartShape.String(),
		LoopLength: loop.Length(),
		Farthest:   loop.Farthest(),
		Enclosed:   enclosed,
	}, nil
}

// Farthest returns the loop distance from the start marker to the farthest
// loop cell.
func Farthest(text string) (int, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return 0, err
	}
	loop, err := tracer.TraceLoop(g)
	if err != nil {
		return 0, err
	}
	return loop.Farthest(), nil
}

// Enclosed returns the number of cells enclosed by the loop.
func Enclosed(text string) (int, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return 0, err
	}
	loop, err := tracer.TraceLoop(g)
	if err != nil {
		return 0, err
	}
	return interior.Count(loop.Resolved, loop.Mask)
}
