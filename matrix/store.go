// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Dense cell-table backend for core.Graph.
// Determinism:
//   - Node index = insertion order; Connections() row-major by index.
// Concurrency:
//   - None. Store is meant to be owned by a core.Graph, which locks.

package matrix

import "github.com/katalvlaran/geomgraph/core"

// cell is one entry of the table; set marks an existing connection.
type cell[E core.Payload] struct {
	set     bool
	hasData bool
	data    E
}

// Store is a dense adjacency-matrix backend. Use New to create one.
type Store[E core.Payload] struct {
	index  map[core.Point]int // node → row/column
	points []core.Point       // row/column → node
	cells  [][]cell[E]        // cells[from][to]
	count  int                // number of connections
}

// New returns an empty Store.
func New[E core.Payload]() *Store[E] {
	return &Store[E]{index: make(map[core.Point]int)}
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

// indexOf returns the index of p, growing the table when p is new.
// Complexity: O(1) for known nodes, O(V) amortized for a new node.
func (s *Store[E]) indexOf(p core.Point) int {
	if i, ok := s.index[p]; ok {
		return i
	}
	i := len(s.points)
	s.index[p] = i
	s.points = append(s.points, p)
	for r := range s.cells {
		s.cells[r] = append(s.cells[r], cell[E]{})
	}
	s.cells = append(s.cells, make([]cell[E], i+1))
	return i
}

// lookup returns the indices of an existing pair; ok is false if either is unknown.
func (s *Store[E]) lookup(from, to core.Point) (i, j int, ok bool) {
	i, okFrom := s.index[from]
	j, okTo := s.index[to]
	return i, j, okFrom && okTo
}

// InsertConnection records from→to. Preconditions are checked by core.Graph.
func (s *Store[E]) InsertConnection(from, to core.Point, data E, hasData bool) {
	i := s.indexOf(from)
	j := s.indexOf(to)
	s.cells[i][j] = cell[E]{set: true, hasData: hasData, data: data}
	s.count++
}

// SwapConnectionData replaces the payload of an existing from→to.
func (s *Store[E]) SwapConnectionData(from, to core.Point, data E, hasData bool) (E, bool) {
	i, j, _ := s.lookup(from, to)
	prev := s.cells[i][j]
	s.cells[i][j] = cell[E]{set: true, hasData: hasData, data: data}
	return prev.data, prev.hasData
}

// DeleteConnection clears an existing from→to; the node indices stay.
func (s *Store[E]) DeleteConnection(from, to core.Point) {
	i, j, _ := s.lookup(from, to)
	s.cells[i][j] = cell[E]{}
	s.count--
}

// HasConnection reports whether from→to is stored. O(1).
func (s *Store[E]) HasConnection(from, to core.Point) bool {
	i, j, ok := s.lookup(from, to)
	return ok && s.cells[i][j].set
}

// ConnectionData returns the payload of from→to, if any. O(1).
func (s *Store[E]) ConnectionData(from, to core.Point) (E, bool) {
	i, j, ok := s.lookup(from, to)
	if !ok {
		var zero E
		return zero, false
	}
	c := s.cells[i][j]
	return c.data, c.hasData
}

// ContainsNode reports node membership. O(1).
func (s *Store[E]) ContainsNode(p core.Point) bool {
	_, ok := s.index[p]
	return ok
}

// IsEmpty reports whether no node is stored.
func (s *Store[E]) IsEmpty() bool {
	return len(s.points) == 0
}

// Nodes returns all nodes in insertion order. O(V).
func (s *Store[E]) Nodes() []core.Point {
	out := make([]core.Point, len(s.points))
	copy(out, s.points)
	return out
}

// Connections returns all connections row-major by node index. O(V²).
func (s *Store[E]) Connections() []core.Connection[E] {
	out := make([]core.Connection[E], 0, s.count)
	for i, row := range s.cells {
		for j, c := range row {
			if !c.set {
				continue
			}
			if c.hasData {
				out = append(out, core.NewConnectionWithData(s.points[i], s.points[j], c.data))
			} else {
				out = append(out, core.NewConnection[E](s.points[i], s.points[j]))
			}
		}
	}
	return out
}

// Outgoing returns the targets of from in index order. O(V).
func (s *Store[E]) Outgoing(from core.Point) []core.Point {
	i, ok := s.index[from]
	if !ok {
		return nil
	}
	var out []core.Point
	for j, c := range s.cells[i] {
		if c.set {
			out = append(out, s.points[j])
		}
	}
	return out
}

// Incoming returns the sources of to in index order. O(V).
func (s *Store[E]) Incoming(to core.Point) []core.Point {
	j, ok := s.index[to]
	if !ok {
		return nil
	}
	var in []core.Point
	for i := range s.cells {
		if s.cells[i][j].set {
			in = append(in, s.points[i])
		}
	}
	return in
}

// Hash sums the element hashes; equal to adjlist's Hash for equal graphs.
func (s *Store[E]) Hash() uint64 {
	var h uint64
	for _, p := range s.points {
		h += core.HashPoint(p)
	}
	for i, row := range s.cells {
		for j, c := range row {
			if c.set {
				h += core.HashConnection(s.points[i], s.points[j], c.hasData)
			}
		}
	}
	return h
}
