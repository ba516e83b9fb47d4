// SPDX-License-Identifier: MIT
//
// File: adjlist.go
// Role: Nested-map adjacency storage for core.Graph.
//   out[from][to] = slot (payload), in[to][from] = struct{}{}
// Determinism:
//   - Nodes() sorted by X then Y; Connections() sorted by From then To;
//     Outgoing/Incoming sorted likewise.
// Concurrency:
//   - None. Store is meant to be owned by a core.Graph, which locks.

package adjlist

import (
	"sort"

	"github.com/katalvlaran/geomgraph/core"
)

// slot holds the payload of one connection.
type slot[E core.Payload] struct {
	data    E
	hasData bool
}

// Store is an adjacency-list backend. Use New to create one.
type Store[E core.Payload] struct {
	nodes map[core.Point]struct{}
	out   map[core.Point]map[core.Point]slot[E]
	in    map[core.Point]map[core.Point]struct{}
	count int // number of connections
}

// New returns an empty Store.
func New[E core.Payload]() *Store[E] {
	return &Store[E]{
		nodes: make(map[core.Point]struct{}),
		out:   make(map[core.Point]map[core.Point]slot[E]),
		in:    make(map[core.Point]map[core.Point]struct{}),
	}
}

// NewGraph is shorthand for core.NewGraph(New[E](), opts...).
func NewGraph[E core.Payload](opts ...core.GraphOption) *core.Graph[E] {
	return core.NewGraph[E](New[E](), opts...)
}

var (
	_ core.Storage[core.NoData] = (*Store[core.NoData])(nil)
	_ core.Navigator            = (*Store[core.NoData])(nil)
	_ core.NodeLookup           = (*Store[core.NoData])(nil)
	_ core.ConnectionRemover    = (*Store[core.NoData])(nil)
)

// InsertConnection records from→to. Preconditions are checked by core.Graph.
// Complexity: O(1) amortized.
func (s *Store[E]) InsertConnection(from, to core.Point, data E, hasData bool) {
	s.nodes[from] = struct{}{}
	s.nodes[to] = struct{}{}

	if s.out[from] == nil {
		s.out[from] = make(map[core.Point]slot[E])
	}
	s.out[from][to] = slot[E]{data: data, hasData: hasData}

	if s.in[to] == nil {
		s.in[to] = make(map[core.Point]struct{})
	}
	s.in[to][from] = struct{}{}
	s.count++
}

// SwapConnectionData replaces the payload of an existing from→to.
// Complexity: O(1).
func (s *Store[E]) SwapConnectionData(from, to core.Point, data E, hasData bool) (E, bool) {
	prev := s.out[from][to]
	s.out[from][to] = slot[E]{data: data, hasData: hasData}
	return prev.data, prev.hasData
}

// DeleteConnection removes an existing from→to; endpoints stay.
// Complexity: O(1).
func (s *Store[E]) DeleteConnection(from, to core.Point) {
	delete(s.out[from], to)
	if len(s.out[from]) == 0 {
		delete(s.out, from)
	}
	delete(s.in[to], from)
	if len(s.in[to]) == 0 {
		delete(s.in, to)
	}
	s.count--
}

// HasConnection reports whether from→to is stored. O(1).
func (s *Store[E]) HasConnection(from, to core.Point) bool {
	_, ok := s.out[from][to]
	return ok
}

// ConnectionData returns the payload of from→to, if any. O(1).
func (s *Store[E]) ConnectionData(from, to core.Point) (E, bool) {
	sl := s.out[from][to]
	return sl.data, sl.hasData
}

// ContainsNode reports node membership. O(1).
func (s *Store[E]) ContainsNode(p core.Point) bool {
	_, ok := s.nodes[p]
	return ok
}

// IsEmpty reports whether no node is stored.
func (s *Store[E]) IsEmpty() bool {
	return len(s.nodes) == 0
}

// Nodes returns all nodes sorted by X then Y.
// Complexity: O(V log V).
func (s *Store[E]) Nodes() []core.Point {
	out := make([]core.Point, 0, len(s.nodes))
	for p := range s.nodes {
		out = append(out, p)
	}
	sortPoints(out)
	return out
}

// Connections returns all connections sorted by From, then To.
// Complexity: O(E log E).
func (s *Store[E]) Connections() []core.Connection[E] {
	out := make([]core.Connection[E], 0, s.count)
	for from, targets := range s.out {
		for to, sl := range targets {
			if sl.hasData {
				out = append(out, core.NewConnectionWithData(from, to, sl.data))
			} else {
				out = append(out, core.NewConnection[E](from, to))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From.Less(out[j].From)
		}
		return out[i].To.Less(out[j].To)
	})
	return out
}

// Outgoing returns the sorted targets of from. O(d log d).
func (s *Store[E]) Outgoing(from core.Point) []core.Point {
	out := make([]core.Point, 0, len(s.out[from]))
	for to := range s.out[from] {
		out = append(out, to)
	}
	sortPoints(out)
	return out
}

// Incoming returns the sorted sources of to. O(d log d).
func (s *Store[E]) Incoming(to core.Point) []core.Point {
	in := make([]core.Point, 0, len(s.in[to]))
	for from := range s.in[to] {
		in = append(in, from)
	}
	sortPoints(in)
	return in
}

// Hash sums the element hashes, so it does not depend on map order.
func (s *Store[E]) Hash() uint64 {
	var h uint64
	for p := range s.nodes {
		h += core.HashPoint(p)
	}
	for from, targets := range s.out {
		for to, sl := range targets {
			h += core.HashConnection(from, to, sl.hasData)
		}
	}
	return h
}

func sortPoints(ps []core.Point) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
}
