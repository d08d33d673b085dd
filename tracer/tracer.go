package tracer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/tile"
)

// LocateStart returns the first start marker in row-major order.
// Returns ErrNoStart if the grid has none.
func LocateStart(g *grid.Grid) (grid.Position, error) {
	p, ok := g.Find(tile.Start)
	if !ok {
		return grid.Position{}, ErrNoStart
	}
	return p, nil
}

// walker encapsulates mutable state of a single candidate walk.
type walker struct {
	g     *grid.Grid
	opts  Options
	ctx   context.Context
	start grid.Position
	walk  *Walk
}

// Trace walks from start in direction dir until it re-enters start.
// The tile at start itself is never consulted. Returns ErrUnresolved (wrapped
// with the failing position) when the walk leaves the grid or meets a tile
// that rejects it; context and hook errors are returned as is.
func Trace(g *grid.Grid, start grid.Position, dir tile.Direction, opts ...Option) (*Walk, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("tracer: start %s: %w", start, grid.ErrOutOfBounds)
	}
	return trace(o.Ctx, g, o, start, dir)
}

func trace(ctx context.Context, g *grid.Grid, o Options, start grid.Position, dir tile.Direction) (*Walk, error) {
	w := &walker{
		g:     g,
		opts:  o,
		ctx:   ctx,
		start: start,
		walk: &Walk{
			Start:   start,
			Leaving: dir,
			Path:    []grid.Position{start},
			Mask:    grid.NewMask(g.Width, g.Height),
		},
	}
	w.walk.Mask.Set(start)
	if err := w.loop(dir); err != nil {
		return nil, err
	}
	return w.walk, nil
}

// loop advances one cell per iteration until the walk closes or fails.
func (w *walker) loop(dir tile.Direction) error {
	pos := w.start
	for {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		// 1) Move and check we are still on the map.
		pos = pos.Step(dir)
		w.walk.Steps++
		if !w.g.InBounds(pos) {
			return fmt.Errorf("%w: left grid at %s", ErrUnresolved, pos)
		}
		if err := w.opts.OnStep(pos, dir); err != nil {
			return err
		}

		// 2) Back at the start: the loop is closed.
		if pos == w.start {
			w.walk.Entering = dir
			return nil
		}
		// A simple cycle visits each cell at most once.
		if w.walk.Mask.Has(pos) {
			return fmt.Errorf("%w: revisited %s", ErrUnresolved, pos)
		}

		// 3) Let the tile redirect us.
		t := w.g.At(pos)
		next, ok := tile.Next(t, dir)
		if !ok {
			return fmt.Errorf("%w: %s at %s rejects %s", ErrUnresolved, t, pos, dir)
		}
		w.walk.Mask.Set(pos)
		w.walk.Path = append(w.walk.Path, pos)
		dir = next
	}
}

// TraceAll traces every candidate direction from the start marker and returns
// one Walk per entry of tile.All, nil where the candidate did not close.
func TraceAll(g *grid.Grid, opts ...Option) ([]*Walk, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start, err := LocateStart(g)
	if err != nil {
		return nil, err
	}
	return candidates(g, o, start, false)
}

// TraceLoop finds the loop through the start marker, trying Up, Down, Left
// and Right in that order; the first candidate that closes wins. The result
// carries the resolved start shape and a grid with the marker replaced.
// Returns ErrNoStart, ErrNoLoop, a wrapped tile.ErrBadStartShape, or any
// context or hook error.
func TraceLoop(g *grid.Grid, opts ...Option) (*Loop, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start, err := LocateStart(g)
	if err != nil {
		return nil, err
	}

	walks, err := candidates(g, o, start, true)
	if err != nil {
		return nil, err
	}
	var w *Walk
	for _, c := range walks {
		if c != nil {
			w = c
			break
		}
	}
	if w == nil {
		return nil, fmt.Errorf("%w at %s", ErrNoLoop, start)
	}

	shape, err := tile.ResolveStart(w.Leaving, w.Entering)
	if err != nil {
		return nil, fmt.Errorf("tracer: start %s: %w", start, err)
	}
	resolved, err := g.With(start, shape)
	if err != nil {
		return nil, fmt.Errorf("tracer: %w", err)
	}
	o.Logger.Debug("loop traced",
		zap.Stringer("start", start),
		zap.Stringer("shape", shape),
		zap.Stringer("leaving", w.Leaving),
		zap.Int("steps", w.Steps))

	return &Loop{Walk: *w, StartShape: shape, Resolved: resolved}, nil
}

// candidates traces the directions of tile.All. Unresolved candidates are
// left nil. In sequential mode firstOnly stops at the first closing walk.
func candidates(g *grid.Grid, o Options, start grid.Position, firstOnly bool) ([]*Walk, error) {
	walks := make([]*Walk, len(tile.All))

	// run traces one candidate and stores it by index, so the caller selects
	// by priority rather than by completion order.
	run := func(ctx context.Context, i int) error {
		d := tile.All[i]
		w, err := trace(ctx, g, o, start, d)
		switch {
		case errors.Is(err, ErrUnresolved):
			o.Logger.Debug("candidate rejected", zap.Stringer("direction", d), zap.Error(err))
			return nil
		case err != nil:
			return err
		}
		walks[i] = w
		return nil
	}

	if o.Parallel {
		eg, ctx := errgroup.WithContext(o.Ctx)
		for i := range tile.All {
			i := i
			eg.Go(func() error { return run(ctx, i) })
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		return walks, nil
	}

	for i := range tile.All {
		if err := run(o.Ctx, i); err != nil {
			return nil, err
		}
		if firstOnly && walks[i] != nil {
			break
		}
	}
	return walks, nil
}
