// SPDX-License-Identifier: MIT
// Package builder_test verifies topology, counts, options and error
// contracts of every constructor.

package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomgraph/adjlist"
	"github.com/katalvlaran/geomgraph/builder"
	"github.com/katalvlaran/geomgraph/core"
	"github.com/katalvlaran/geomgraph/matrix"
)

const seed = 7

func build[E core.Payload](t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor[E]) *core.Graph[E] {
	t.Helper()
	g, err := builder.BuildGraph[E](adjlist.New[E](), nil, bopts, cons...)
	require.NoError(t, err)
	return g
}

// TestBuilders_Counts runs table-driven node/connection counts for each
// topology, two-way and one-way.
func TestBuilders_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		ctor           builder.Constructor[core.NoData]
		wantNodes      int
		wantUndirected int
	}{
		{"Path(4)", builder.Path[core.NoData](4), 4, 3},
		{"Cycle(5)", builder.Cycle[core.NoData](5), 5, 5},
		{"Star(4)", builder.Star[core.NoData](4), 5, 4},
		{"Grid(2,3)", builder.Grid[core.NoData](2, 3), 6, 7},
		{"Grid(1,2)", builder.Grid[core.NoData](1, 2), 2, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, nil, tc.ctor)
			require.Equal(t, tc.wantNodes, g.NodeCount())
			require.Equal(t, 2*tc.wantUndirected, g.ConnectionCount(), "two-way roads")

			g = build(t, []builder.BuilderOption{builder.WithOneWay()}, tc.ctor)
			require.Equal(t, tc.wantNodes, g.NodeCount())
			require.Equal(t, tc.wantUndirected, g.ConnectionCount(), "one-way roads")
		})
	}
}

// TestGrid_Geometry VERIFIES placement honours origin and spacing.
func TestGrid_Geometry(t *testing.T) {
	g := build(t,
		[]builder.BuilderOption{builder.WithOrigin(core.Pt(10, -5)), builder.WithSpacing(2), builder.WithOneWay()},
		builder.Grid[core.NoData](2, 2),
	)
	require.ElementsMatch(t, []core.Point{
		core.Pt(10, -5), core.Pt(12, -5), core.Pt(10, -3), core.Pt(12, -3),
	}, g.Nodes())
	require.True(t, g.HasConnection(core.Pt(10, -5), core.Pt(12, -5)), "right")
	require.True(t, g.HasConnection(core.Pt(10, -5), core.Pt(10, -3)), "up")
	require.False(t, g.HasConnection(core.Pt(12, -5), core.Pt(10, -5)), "one-way")

	l, err := g.ConnectionLength(core.Pt(10, -5), core.Pt(12, -5))
	require.NoError(t, err)
	require.Equal(t, 2.0, l)
}

// TestPath_Geometry VERIFIES nodes lie on the x axis at spacing steps.
func TestPath_Geometry(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSpacing(0.5)}, builder.Path[core.NoData](3))
	for _, p := range []core.Point{core.Pt(0, 0), core.Pt(0.5, 0), core.Pt(1, 0)} {
		require.True(t, g.ContainsNode(p), p.String())
	}
	require.True(t, g.HasConnection(core.Pt(0.5, 0), core.Pt(0, 0)))
}

// TestCycleAndStar_Radius VERIFIES ring nodes sit at distance spacing.
func TestCycleAndStar_Radius(t *testing.T) {
	origin := core.Pt(3, 3)
	opts := []builder.BuilderOption{builder.WithOrigin(origin), builder.WithSpacing(4)}

	g := build(t, opts, builder.Cycle[core.NoData](6))
	for _, p := range g.Nodes() {
		require.InDelta(t, 4.0, core.Distance(origin, p), 1e-9)
	}
	require.True(t, g.ContainsNode(core.Pt(7, 3)), "node 0 at angle 0")

	g = build(t, opts, builder.Star[core.NoData](3))
	out, err := g.Outgoing(origin)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, p := range out {
		require.InDelta(t, 4.0, core.Distance(origin, p), 1e-9)
	}
}

// TestRandomGeometric_Deterministic VERIFIES same seed ⇒ equal graphs, and
// that a radius covering the square yields a complete graph.
func TestRandomGeometric_Deterministic(t *testing.T) {
	const n = 12
	opts := []builder.BuilderOption{builder.WithSeed(seed)}

	g1 := build(t, opts, builder.RandomGeometric[core.NoData](n, 10, 3))
	g2, err := builder.BuildGraph[core.NoData](matrix.New[core.NoData](), nil, opts,
		builder.RandomGeometric[core.NoData](n, 10, 3))
	require.NoError(t, err)
	require.True(t, g1.Equal(g2))
	require.Equal(t, g1.Hash(), g2.Hash())

	for _, c := range g1.Connections() {
		require.LessOrEqual(t, core.Distance(c.From, c.To), 3.0)
	}

	full := build(t, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(seed)))},
		builder.RandomGeometric[core.NoData](n, 10, 100))
	require.Equal(t, n, full.NodeCount())
	require.Equal(t, n*(n-1), full.ConnectionCount())
	box, err := full.BoundingBox()
	require.NoError(t, err)
	require.True(t, box.MinX >= 0 && box.MaxX < 10 && box.MinY >= 0 && box.MaxY < 10)
}

// TestWithPayload VERIFIES payloads are attached and type mismatches fail.
func TestWithPayload(t *testing.T) {
	speed := builder.WithPayload(func(from, to core.Point) core.RoadData {
		return core.RoadData{MaxSpeed: 50}
	})

	g := build(t, []builder.BuilderOption{speed}, builder.Path[core.RoadData](3))
	for _, c := range g.Connections() {
		d, ok := c.Data()
		require.True(t, ok)
		require.Equal(t, 50.0, d.MaxSpeed)
	}

	_, err := builder.BuildGraph[core.LengthData](adjlist.New[core.LengthData](), nil,
		[]builder.BuilderOption{speed}, builder.Path[core.LengthData](3))
	require.ErrorIs(t, err, builder.ErrOptionViolation)
}

// TestComposition VERIFIES constructors may share nodes and connections.
func TestComposition(t *testing.T) {
	g := build(t, nil, builder.Grid[core.NoData](3, 3), builder.Path[core.NoData](3))
	require.Equal(t, 9, g.NodeCount())
	require.Equal(t, 24, g.ConnectionCount(), "path roads already exist in the grid")

	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithOrigin(core.Pt(2, 0))},
		builder.Path[core.NoData](2)))
	require.Equal(t, 10, g.NodeCount())
	require.Equal(t, 26, g.ConnectionCount())
	require.True(t, g.HasConnection(core.Pt(3, 0), core.Pt(2, 0)))
}

// TestBuilders_Errors VERIFIES sentinel errors for invalid parameters.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor[core.NoData]
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path[core.NoData](1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle[core.NoData](2), nil, builder.ErrTooFewVertices},
		{"Star(0)", builder.Star[core.NoData](0), nil, builder.ErrTooFewVertices},
		{"Grid(0,5)", builder.Grid[core.NoData](0, 5), nil, builder.ErrTooFewVertices},
		{"Grid(1,1)", builder.Grid[core.NoData](1, 1), nil, builder.ErrTooFewVertices},
		{"RandomGeometric/no rng", builder.RandomGeometric[core.NoData](5, 1, 1), nil, builder.ErrNeedRandSource},
		{"RandomGeometric/radius", builder.RandomGeometric[core.NoData](5, 1, 0),
			[]builder.BuilderOption{builder.WithSeed(seed)}, builder.ErrInvalidParameter},
		{"RandomGeometric/n", builder.RandomGeometric[core.NoData](1, 1, 1),
			[]builder.BuilderOption{builder.WithSeed(seed)}, builder.ErrTooFewVertices},
		{"nil", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph[core.NoData](adjlist.New[core.NoData](), nil, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
			require.Contains(t, err.Error(), "BuildGraph")
		})
	}
}

// TestOptions_Panics VERIFIES option constructors reject meaningless input.
func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithSpacing(0) })
	require.Panics(t, func() { builder.WithSpacing(-1) })
	require.Panics(t, func() { builder.WithOrigin(core.Pt(0, math.Inf(1))) })
	require.Panics(t, func() { builder.WithPayload[core.NoData](nil) })
}
