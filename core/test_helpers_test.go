// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"github.com/katalvlaran/geomgraph/adjlist"
	"github.com/katalvlaran/geomgraph/core"
	"github.com/katalvlaran/geomgraph/matrix"
)

// Common points used across core tests.
var (
	P00   = core.Pt(0, 0)
	P11   = core.Pt(1, 1)
	P34   = core.Pt(3, 4)
	P010  = core.Pt(0, 10)
	P1010 = core.Pt(10, 10)

	Origin    = core.Pt(0, 0)
	NorthWest = core.Pt(0, 100)
	SouthEast = core.Pt(100, 0)
	NorthEast = core.Pt(100, 100)
	Center    = core.Pt(50, 50)
)

// Seeds and sizes (avoid magic numbers in test bodies).
const (
	Seed42      = 42
	NDraws      = 100_000
	NSmallDraws = 1_000
	NWorkers    = 16
)

// backend names a storage factory for table-driven and suite tests.
type backend struct {
	name string
	new  func() core.Storage[core.LengthData]
}

// backends lists every storage exercised by the cross-backend tests.
// sliceStore lacks all optional capabilities, so it covers the fallbacks.
func backends() []backend {
	return []backend{
		{"adjlist", func() core.Storage[core.LengthData] { return adjlist.New[core.LengthData]() }},
		{"matrix", func() core.Storage[core.LengthData] { return matrix.New[core.LengthData]() }},
		{"slice", func() core.Storage[core.LengthData] { return &sliceStore{} }},
	}
}

// squareWithCenter builds {(0,0),(0,100),(100,0),(100,100),(50,50)}, every
// corner linked to the centre in both directions.
func squareWithCenter(store core.Storage[core.NoData]) *core.Graph[core.NoData] {
	g := core.NewGraph[core.NoData](store)
	for _, corner := range []core.Point{Origin, NorthWest, SouthEast, NorthEast} {
		_ = g.AddConnection(corner, Center)
		_ = g.AddConnection(Center, corner)
	}
	return g
}

// seqRand replays scripted draws. Sequences wrap around when exhausted.
type seqRand struct {
	gauss []float64
	ints  []int

	gaussCalls int
	intCalls   int
}

func (r *seqRand) NormFloat64() float64 {
	v := r.gauss[r.gaussCalls%len(r.gauss)]
	r.gaussCalls++
	return v
}

func (r *seqRand) Intn(n int) int {
	v := r.ints[r.intCalls%len(r.ints)]
	r.intCalls++
	return v % n
}

func (r *seqRand) Float64() float64 { return 0.5 }

// sliceStore is a minimal Storage: linear scans, insertion order, no
// optional capabilities.
type sliceStore struct {
	nodes []core.Point
	conns []core.Connection[core.LengthData]
}

func (s *sliceStore) find(from, to core.Point) int {
	for i, c := range s.conns {
		if c.From == from && c.To == to {
			return i
		}
	}
	return -1
}

func (s *sliceStore) addNode(p core.Point) {
	for _, n := range s.nodes {
		if n == p {
			return
		}
	}
	s.nodes = append(s.nodes, p)
}

func (s *sliceStore) InsertConnection(from, to core.Point, data core.LengthData, hasData bool) {
	s.addNode(from)
	s.addNode(to)
	if hasData {
		s.conns = append(s.conns, core.NewConnectionWithData(from, to, data))
	} else {
		s.conns = append(s.conns, core.NewConnection[core.LengthData](from, to))
	}
}

func (s *sliceStore) SwapConnectionData(from, to core.Point, data core.LengthData, hasData bool) (core.LengthData, bool) {
	i := s.find(from, to)
	prev, hadPrev := s.conns[i].Data()
	if hasData {
		s.conns[i] = core.NewConnectionWithData(from, to, data)
	} else {
		s.conns[i] = core.NewConnection[core.LengthData](from, to)
	}
	return prev, hadPrev
}

func (s *sliceStore) Nodes() []core.Point {
	return append([]core.Point(nil), s.nodes...)
}

func (s *sliceStore) Connections() []core.Connection[core.LengthData] {
	return append([]core.Connection[core.LengthData](nil), s.conns...)
}

func (s *sliceStore) HasConnection(from, to core.Point) bool { return s.find(from, to) >= 0 }

func (s *sliceStore) ConnectionData(from, to core.Point) (core.LengthData, bool) {
	if i := s.find(from, to); i >= 0 {
		return s.conns[i].Data()
	}
	return core.LengthData{}, false
}

func (s *sliceStore) IsEmpty() bool { return len(s.nodes) == 0 }

func (s *sliceStore) Hash() uint64 {
	var h uint64
	for _, p := range s.nodes {
		h += core.HashPoint(p)
	}
	for _, c := range s.conns {
		h += core.HashConnection(c.From, c.To, c.HasData())
	}
	return h
}
