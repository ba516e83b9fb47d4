// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomgraph/adjlist"
	"github.com/katalvlaran/geomgraph/core"
	"github.com/katalvlaran/geomgraph/matrix"
)

var (
	a = core.Pt(2, 1)
	b = core.Pt(0, 5)
	c = core.Pt(0, 3)
)

// TestStore_InsertionOrder VERIFIES nodes keep insertion order and
// connections are listed row-major.
func TestStore_InsertionOrder(t *testing.T) {
	s := matrix.New[core.LengthData]()
	s.InsertConnection(a, b, core.LengthData{}, false)
	s.InsertConnection(c, a, core.LengthData{Value: 1}, true)
	s.InsertConnection(a, c, core.LengthData{}, false)

	require.Equal(t, []core.Point{a, b, c}, s.Nodes())
	require.Equal(t, []core.Connection[core.LengthData]{
		core.NewConnection[core.LengthData](a, b),
		core.NewConnection[core.LengthData](a, c),
		core.NewConnectionWithData(c, a, core.LengthData{Value: 1}),
	}, s.Connections())

	require.Equal(t, []core.Point{b, c}, s.Outgoing(a))
	require.Equal(t, []core.Point{c}, s.Incoming(a))
	require.Nil(t, s.Outgoing(core.Pt(9, 9)))
}

// TestStore_GrowthKeepsCells VERIFIES growing the table preserves existing cells.
func TestStore_GrowthKeepsCells(t *testing.T) {
	s := matrix.New[core.LengthData]()
	s.InsertConnection(a, b, core.LengthData{Value: 3}, true)
	for i := 0; i < 20; i++ {
		s.InsertConnection(core.Pt(float64(i), 100), core.Pt(float64(i), 200), core.LengthData{}, false)
	}

	data, ok := s.ConnectionData(a, b)
	require.True(t, ok)
	require.Equal(t, 3.0, data.Value)
	require.Len(t, s.Nodes(), 42)
	require.Len(t, s.Connections(), 21)
	require.False(t, s.HasConnection(b, a))
	require.False(t, s.HasConnection(a, core.Pt(-1, -1)))

	_, ok = s.ConnectionData(a, core.Pt(-1, -1))
	require.False(t, ok)
}

// TestStore_SwapAndDelete VERIFIES payload swaps and removals.
func TestStore_SwapAndDelete(t *testing.T) {
	s := matrix.New[core.LengthData]()
	s.InsertConnection(a, b, core.LengthData{Value: 2}, true)

	prev, had := s.SwapConnectionData(a, b, core.LengthData{}, false)
	require.True(t, had)
	require.Equal(t, 2.0, prev.Value)
	_, ok := s.ConnectionData(a, b)
	require.False(t, ok)

	s.DeleteConnection(a, b)
	require.False(t, s.HasConnection(a, b))
	require.True(t, s.ContainsNode(a))
	require.Empty(t, s.Connections())
}

// TestStore_HashMatchesAdjList VERIFIES both backends hash equal content equally.
func TestStore_HashMatchesAdjList(t *testing.T) {
	m := matrix.New[core.NoData]()
	l := adjlist.New[core.NoData]()
	m.InsertConnection(a, b, core.NoData{}, false)
	m.InsertConnection(b, c, core.NoData{}, true)
	l.InsertConnection(b, c, core.NoData{}, true)
	l.InsertConnection(a, b, core.NoData{}, false)

	require.Equal(t, m.Hash(), l.Hash())
	require.True(t, core.Equal[core.NoData](m, l))
}

// TestLengths VERIFIES the exported length matrix.
func TestLengths(t *testing.T) {
	g := matrix.NewGraph[core.LengthData]()
	p0, p1, p2 := core.Pt(0, 0), core.Pt(3, 4), core.Pt(6, 8)
	require.NoError(t, g.AddConnection(p0, p1))
	require.NoError(t, g.AddConnectionWithData(p1, p2, core.LengthData{Value: 1.5}))

	index, m := matrix.Lengths[core.LengthData](g)
	require.Equal(t, []core.Point{p0, p1, p2}, index)
	require.Equal(t, 0.0, m[0][0])
	require.Equal(t, 5.0, m[0][1])
	require.Equal(t, 1.5, m[1][2])
	require.True(t, math.IsInf(m[1][0], 1))
	require.True(t, math.IsInf(m[0][2], 1))

	index, m = matrix.Lengths[core.LengthData](matrix.NewGraph[core.LengthData]())
	require.Empty(t, index)
	require.Empty(t, m)
}
