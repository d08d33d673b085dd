package interior

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipemaze/grid"
)

// Sentinel errors for interior classification.
var (
	// ErrMaskSize is returned when the loop mask does not match the grid.
	ErrMaskSize = errors.New("interior: mask dimensions differ from grid")

	// ErrUnresolvedStart is returned when a loop cell still holds the start
	// marker; classify the resolved grid from the tracer instead.
	ErrUnresolvedStart = errors.New("interior: start marker not resolved")

	// ErrNotPipe is returned when the mask marks a ground cell as loop.
	ErrNotPipe = errors.New("interior: loop cell is not a pipe")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("interior: invalid option supplied")
)

// Option configures classification via functional arguments.
type Option func(*Options)

// Options holds parameters for Classify.
type Options struct {
	// Ctx allows cancellation; checked once per row.
	Ctx context.Context

	// Workers bounds concurrent row scans. 1 scans sequentially.
	Workers int

	// Logger receives debug output.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, sequential
// scanning and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		Logger:  zap.NewNop(),
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

// WithParallel scans rows concurrently.
//
//	n > 0:  at most n rows in flight
//	n == 0: runtime.GOMAXPROCS(0) rows in flight
//	n < 0:  invalid option → ErrOptionViolation
func WithParallel(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
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

// Result holds the outcome of Classify.
type Result struct {
	// Count is the number of enclosed cells.
	Count int

	// Enclosed marks every enclosed cell.
	Enclosed grid.Mask
}
