package tracer

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/tile"
)

// Sentinel errors for loop tracing.
var (
	// ErrNoStart is returned when the grid holds no start marker.
	ErrNoStart = errors.New("tracer: no start marker found")

	// ErrUnresolved marks a candidate walk that left the grid or hit a tile
	// that does not accept it.
	ErrUnresolved = errors.New("tracer: walk did not close")

	// ErrNoLoop is returned when no initial direction closes a loop.
	ErrNoLoop = errors.New("tracer: no closed loop through start")
)

// Option configures tracing via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for tracing.
type Options struct {
	// Ctx allows cancellation; checked once per step.
	Ctx context.Context

	// Parallel evaluates candidate directions concurrently.
	Parallel bool

	// OnStep is called for every cell the walk enters, with the direction of
	// travel on entry. Returning an error aborts the trace with that error.
	// With Parallel set it may be called from several goroutines.
	OnStep func(p grid.Position, in tile.Direction) error

	// Logger receives debug output about candidate outcomes.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a background context, sequential
// candidates, a no-op hook and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Parallel: false,
		OnStep:   func(grid.Position, tile.Direction) error { return nil },
		Logger:   zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithParallel evaluates the four candidate directions concurrently.
func WithParallel() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// WithOnStep registers a callback invoked on every cell entered.
func WithOnStep(fn func(p grid.Position, in tile.Direction) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Walk is the outcome of one closing candidate.
type Walk struct {
	// Start is the cell the walk began and ended on.
	Start grid.Position

	// Leaving is the first direction taken out of Start.
	Leaving tile.Direction

	// Entering is the direction of travel when the walk re-entered Start.
	Entering tile.Direction

	// Steps counts edges traversed, including the last one back into Start.
	// On a closed loop it equals the number of loop cells.
	Steps int

	// Path lists loop cells in traversal order, Start first.
	Path []grid.Position

	// Mask marks every loop cell, Start included.
	Mask grid.Mask
}

// Loop is a traced loop together with its resolved start shape.
type Loop struct {
	Walk

	// StartShape is the pipe shape hidden under the start marker.
	StartShape tile.Tile

	// Resolved is a copy of the input grid with the start marker replaced by
	// StartShape. The input grid is left unchanged.
	Resolved *grid.Grid
}

// Length returns the number of cells on the loop.
func (l *Loop) Length() int {
	return len(l.Path)
}

// Farthest returns the loop distance from Start to the farthest loop cell,
// ceil(Steps/2).
func (l *Loop) Farthest() int {
	return (l.Steps + 1) / 2
}
