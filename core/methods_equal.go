// SPDX-License-Identifier: MIT
//
// File: methods_equal.go
// Role: Structural equality shared by all backends, plus the element hashes
//       backends combine into a Hash consistent with it.

package core

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Equal reports whether a and b hold the same node set and the same
// connection set, payloads compared with ==. Storage layout and iteration
// order are irrelevant.
//
// Payloads of interface type holding non-comparable dynamic values panic,
// as they would with ==.
// Complexity: O(V + E) time and space.
func Equal[E Payload](a, b View[E]) bool {
	an, bn := a.Nodes(), b.Nodes()
	if len(an) != len(bn) {
		return false
	}
	nodes := make(map[Point]struct{}, len(an))
	for _, p := range an {
		nodes[p] = struct{}{}
	}
	for _, p := range bn {
		if _, ok := nodes[p]; !ok {
			return false
		}
	}

	ac, bc := a.Connections(), b.Connections()
	if len(ac) != len(bc) {
		return false
	}
	conns := make(map[Connection[E]]struct{}, len(ac))
	for _, c := range ac {
		conns[c] = struct{}{}
	}
	for _, c := range bc {
		if _, ok := conns[c]; !ok {
			return false
		}
	}

	return true
}

// Equal reports structural equality with other (any View, any backend).
//
// other is read before g's lock is taken, so g.mu is never held while
// waiting on another graph's lock.
func (g *Graph[E]) Equal(other View[E]) bool {
	var snap frozen[E]
	if og, ok := other.(*Graph[E]); ok {
		if og == g {
			return true
		}
		snap = og.snapshot()
	} else {
		snap = frozen[E]{nodes: other.Nodes(), conns: other.Connections()}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return Equal[E](g.store, snap)
}

// snapshot copies nodes and connections under a single read lock.
func (g *Graph[E]) snapshot() frozen[E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return frozen[E]{nodes: g.store.Nodes(), conns: g.store.Connections()}
}

// frozen is an immutable View over copied node and connection lists.
type frozen[E Payload] struct {
	nodes []Point
	conns []Connection[E]
}

func (f frozen[E]) Nodes() []Point               { return f.nodes }
func (f frozen[E]) Connections() []Connection[E] { return f.conns }
func (f frozen[E]) IsEmpty() bool                { return len(f.nodes) == 0 }

func (f frozen[E]) HasConnection(from, to Point) bool {
	_, ok := f.find(from, to)
	return ok
}

func (f frozen[E]) ConnectionData(from, to Point) (E, bool) {
	if c, ok := f.find(from, to); ok {
		return c.Data()
	}
	var zero E
	return zero, false
}

func (f frozen[E]) find(from, to Point) (Connection[E], bool) {
	for _, c := range f.conns {
		if c.From == from && c.To == to {
			return c, true
		}
	}
	return Connection[E]{}, false
}

// HashPoint hashes p. Points that are == hash equally (-0 and +0 included).
func HashPoint(p Point) uint64 {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(p.X+0))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.Y+0))
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// HashConnection hashes the endpoints and payload presence of from→to. The
// payload value itself is left out: == on arbitrary payloads gives no
// portable hash, and leaving it out can only add collisions.
func HashConnection(from, to Point, hasData bool) uint64 {
	h := HashPoint(from)*31 + HashPoint(to)
	if hasData {
		h ^= 0x9e3779b97f4a7c15
	}
	return h
}
