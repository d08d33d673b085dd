package interior

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/tile"
)

// noCorner marks the absence of a pending corner.
const noCorner tile.Tile = 0

// Classify counts the cells of g that are off the loop marked by loop and
// enclosed by it. g must be the resolved grid.
// Returns ErrMaskSize, ErrUnresolvedStart, ErrNotPipe, a wrapped
// tile.ErrUnpairedCorner, ErrOptionViolation, or a context error.
func Classify(g *grid.Grid, loop grid.Mask, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !loop.Fits(g) {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrMaskSize, g.Width, g.Height)
	}

	enclosed := grid.NewMask(g.Width, g.Height)
	counts := make([]int, g.Height)

	// Rows share no mutable state: each scan writes only its own row of
	// enclosed and its own slot of counts.
	if o.Workers > 1 {
		eg, ctx := errgroup.WithContext(o.Ctx)
		eg.SetLimit(o.Workers)
		for r := 0; r < g.Height; r++ {
			r := r
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				n, err := scanRow(g, loop, enclosed, r)
				counts[r] = n
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for r := 0; r < g.Height; r++ {
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
			n, err := scanRow(g, loop, enclosed, r)
			if err != nil {
				return nil, err
			}
			counts[r] = n
		}
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	o.Logger.Debug("interior classified",
		zap.Int("rows", g.Height),
		zap.Int("workers", o.Workers),
		zap.Int("enclosed", total))

	return &Result{Count: total, Enclosed: enclosed}, nil
}

// Count is Classify reduced to the enclosed-cell count.
func Count(g *grid.Grid, loop grid.Mask, opts ...Option) (int, error) {
	res, err := Classify(g, loop, opts...)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// scanRow applies the parity scan to row r, marks enclosed cells, and
// returns how many it marked.
func scanRow(g *grid.Grid, loop, enclosed grid.Mask, r int) (int, error) {
	inside := false
	pending := noCorner
	n := 0
	for c := 0; c < g.Width; c++ {
		p := grid.Position{Row: r, Col: c}
		if !loop.Has(p) {
			if inside {
				enclosed.Set(p)
				n++
			}
			continue
		}

		t := g.At(p)
		switch {
		case t == tile.Vertical:
			inside = !inside
		case t == tile.Horizontal:
			// continues the current run
		case t.IsElbow() && pending == noCorner:
			pending = t
		case t.IsElbow():
			crosses, err := tile.Crosses(pending, t)
			if err != nil {
				return 0, fmt.Errorf("interior: at %s: %w", p, err)
			}
			if crosses {
				inside = !inside
			}
			pending = noCorner
		case t == tile.Start:
			return 0, fmt.Errorf("%w: at %s", ErrUnresolvedStart, p)
		default:
			return 0, fmt.Errorf("%w: %s at %s", ErrNotPipe, t, p)
		}
	}
	if pending != noCorner {
		return 0, fmt.Errorf("interior: row %d ends after %s: %w", r, pending, tile.ErrUnpairedCorner)
	}
	return n, nil
}
