package tracer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/internal/mazetest"
	"github.com/katalvlaran/pipemaze/tile"
	"github.com/katalvlaran/pipemaze/tracer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	windingMaze = mazetest.Winding.Text
	squareMaze  = mazetest.Square.Text
)

// TracerSuite exercises loop tracing on the reference mazes.
type TracerSuite struct {
	suite.Suite
}

func (s *TracerSuite) parse(text string) *grid.Grid {
	g, err := grid.Parse(text)
	s.Require().NoError(err)
	return g
}

// TestWindingLoop checks length, farthest distance, mask and start shape.
func (s *TracerSuite) TestWindingLoop() {
	g := s.parse(windingMaze)
	loop, err := tracer.TraceLoop(g)
	s.Require().NoError(err)

	s.Equal(grid.Position{Row: 2, Col: 0}, loop.Start)
	s.Equal(tile.Down, loop.Leaving)
	s.Equal(tile.Left, loop.Entering)
	s.Equal(16, loop.Steps)
	s.Equal(16, loop.Length())
	s.Equal(8, loop.Farthest())
	s.Equal(loop.Steps, loop.Mask.Count())
	s.Equal(tile.SouthEast, loop.StartShape)

	want := []string{"..F7.", ".FJ|.", "FJ.L7", "|F--J", "LJ..."}
	if diff := cmp.Diff(want, loop.Resolved.Rows()); diff != "" {
		s.Failf("resolved grid mismatch", "(-want +got):\n%s", diff)
	}
	s.Equal(tile.Start, g.At(loop.Start), "input grid must keep its marker")
}

// TestSquareLoop covers the smallest loop with an interior cell.
func (s *TracerSuite) TestSquareLoop() {
	loop, err := tracer.TraceLoop(s.parse(squareMaze))
	s.Require().NoError(err)
	s.Equal(8, loop.Steps)
	s.Equal(4, loop.Farthest())
	s.Equal(tile.SouthEast, loop.StartShape)
	s.False(loop.Mask.Has(grid.Position{Row: 2, Col: 2}))
	s.Equal(
		".....\n.###.\n.#.#.\n.###.\n.....",
		loop.Mask.Render('#', '.'),
	)
}

// TestPathOrder checks the path starts at S and moves one cell per step.
func (s *TracerSuite) TestPathOrder() {
	loop, err := tracer.TraceLoop(s.parse(windingMaze))
	s.Require().NoError(err)
	s.Equal(loop.Start, loop.Path[0])
	for i := 1; i <= len(loop.Path); i++ {
		a, b := loop.Path[i-1], loop.Path[i%len(loop.Path)]
		dr, dc := a.Row-b.Row, a.Col-b.Col
		s.Equal(1, dr*dr+dc*dc, "cells %s and %s are not adjacent", a, b)
	}
}

// TestAllCandidatesAgree checks both closing ends report the same cycle.
func (s *TracerSuite) TestAllCandidatesAgree() {
	for _, m := range mazetest.All {
		walks, err := tracer.TraceAll(s.parse(m.Text))
		s.Require().NoError(err, m.Name)
		s.Require().Len(walks, len(tile.All))

		closed := 0
		for _, w := range walks {
			if w == nil {
				continue
			}
			closed++
			s.Equal(m.Length, w.Steps, m.Name)
			s.Equal(w.Steps, w.Mask.Count(), m.Name)
			s.Len(w.Path, w.Steps, m.Name)
		}
		s.Equal(2, closed, m.Name)
	}
}

// TestFarthest checks the farthest distance of every reference maze.
func (s *TracerSuite) TestFarthest() {
	for _, m := range mazetest.All {
		loop, err := tracer.TraceLoop(s.parse(m.Text))
		s.Require().NoError(err, m.Name)
		s.Equal(m.Farthest, loop.Farthest(), m.Name)
	}
}

// TestParallelMatchesSequential checks the priority order holds under
// concurrent evaluation.
func (s *TracerSuite) TestParallelMatchesSequential() {
	for _, m := range mazetest.All {
		g := s.parse(m.Text)
		seq, err := tracer.TraceLoop(g)
		s.Require().NoError(err)
		par, err := tracer.TraceLoop(g, tracer.WithParallel())
		s.Require().NoError(err)

		s.Equal(seq.Leaving, par.Leaving, m.Name)
		s.Equal(seq.StartShape, par.StartShape, m.Name)
		s.Equal(seq.Path, par.Path, m.Name)
	}
}

func TestTracerSuite(t *testing.T) {
	suite.Run(t, new(TracerSuite))
}

//----------------------------------------------------------------------------//
// Error paths
//----------------------------------------------------------------------------//

func TestLocateStart(t *testing.T) {
	g, err := grid.Parse("...\n.S.\n..S")
	require.NoError(t, err)
	p, err := tracer.LocateStart(g)
	require.NoError(t, err)
	require.Equal(t, grid.Position{Row: 1, Col: 1}, p, "first marker in row-major order wins")

	g, err = grid.Parse("-|\n7F")
	require.NoError(t, err)
	_, err = tracer.LocateStart(g)
	require.ErrorIs(t, err, tracer.ErrNoStart)

	_, err = tracer.TraceLoop(g)
	require.ErrorIs(t, err, tracer.ErrNoStart)
}

func TestTrace_Unresolved(t *testing.T) {
	g, err := grid.Parse(windingMaze)
	require.NoError(t, err)
	start := grid.Position{Row: 2, Col: 0}

	cases := []struct {
		name string
		dir  tile.Direction
	}{
		{"IntoGround", tile.Up},
		{"OffGrid", tile.Left},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tracer.Trace(g, start, tc.dir)
			require.ErrorIs(t, err, tracer.ErrUnresolved)
		})
	}

	_, err = tracer.Trace(g, grid.Position{Row: 9}, tile.Up)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestTrace_RejectingConnector(t *testing.T) {
	// The horizontal connector below S cannot be entered moving down.
	g, err := grid.Parse("S7\n-J")
	require.NoError(t, err)
	_, err = tracer.Trace(g, grid.Position{}, tile.Down)
	require.ErrorIs(t, err, tracer.ErrUnresolved)

	// Going right, the walk comes back along the bottom row and runs off the left edge.
	_, err = tracer.Trace(g, grid.Position{}, tile.Right)
	require.ErrorIs(t, err, tracer.ErrUnresolved)
}

func TestTraceLoop_NoLoop(t *testing.T) {
	for _, text := range []string{"S", "S-\n..", "S-7\n|.|\nL-."} {
		g, err := grid.Parse(text)
		require.NoError(t, err)
		_, err = tracer.TraceLoop(g)
		require.ErrorIs(t, err, tracer.ErrNoLoop, "grid %q", text)

		_, err = tracer.TraceLoop(g, tracer.WithParallel())
		require.ErrorIs(t, err, tracer.ErrNoLoop, "grid %q (parallel)", text)
	}
}

func TestTraceLoop_Canceled(t *testing.T) {
	g, err := grid.Parse(windingMaze)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = tracer.TraceLoop(g, tracer.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = tracer.TraceLoop(g, tracer.WithContext(ctx), tracer.WithParallel())
	require.ErrorIs(t, err, context.Canceled)
}

func TestTrace_OnStep(t *testing.T) {
	g, err := grid.Parse(windingMaze)
	require.NoError(t, err)
	start := grid.Position{Row: 2, Col: 0}

	var seen []grid.Position
	w, err := tracer.Trace(g, start, tile.Down, tracer.WithOnStep(func(p grid.Position, _ tile.Direction) error {
		seen = append(seen, p)
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, seen, w.Steps)
	require.Equal(t, start, seen[len(seen)-1])

	boom := errors.New("boom")
	_, err = tracer.TraceLoop(g, tracer.WithOnStep(func(grid.Position, tile.Direction) error {
		return boom
	}))
	require.ErrorIs(t, err, boom)
}

func TestTraceLoop_Logging(t *testing.T) {
	g, err := grid.Parse(windingMaze)
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)
	_, err = tracer.TraceLoop(g, tracer.WithLogger(zap.New(core)))
	require.NoError(t, err)

	// Up is rejected before Down closes the loop.
	require.Equal(t, 1, logs.FilterMessage("candidate rejected").Len())
	require.Equal(t, 1, logs.FilterMessage("loop traced").Len())
}

func TestLoop_FarthestRounding(t *testing.T) {
	l := &tracer.Loop{Walk: tracer.Walk{Steps: 15}}
	require.Equal(t, 8, l.Farthest())
	l.Steps = 16
	require.Equal(t, 8, l.Farthest())
}
