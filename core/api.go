// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Graph type, constructor, options and thin read-only getters.
// Concurrency:
//   - Every exported method acquires mu: write lock for mutations, read lock
//     for queries and sampling. A single call is atomic; batches are not.

package core

import (
	"fmt"
	"sync"
	"sync/atomic"
)

const (
	// DefaultTruncation is the bound B, in standard deviations, used by the
	// center-biased node sampler.
	DefaultTruncation = 10.0

	// DefaultMaxRedraws bounds the rejection loop of the node sampler per axis.
	DefaultMaxRedraws = 1000
)

// Graph layers the connection invariants, length resolution, equality and
// sampling algorithms over any Storage backend.
//
// The Graph owns its storage exclusively: once wrapped, the storage must not
// be mutated directly.
type Graph[E Payload] struct {
	mu    sync.RWMutex // guards store
	store Storage[E]

	truncation float64 // bound B for the truncated normal draws
	maxRedraws int     // per-axis redraw budget before clamping

	clamped atomic.Uint64 // draws that exhausted the redraw budget
}

// graphConfig is resolved from GraphOption values before construction.
type graphConfig struct {
	truncation float64
	maxRedraws int
}

// GraphOption configures a Graph at construction.
type GraphOption func(*graphConfig)

// WithTruncation sets the truncation bound B (in standard deviations) of the
// node sampler. Panics on b <= 0.
func WithTruncation(b float64) GraphOption {
	if !(b > 0) {
		panic(fmt.Sprintf("core: WithTruncation(%g)", b))
	}
	return func(c *graphConfig) { c.truncation = b }
}

// WithMaxRedraws sets how many times a single axis draw may be redrawn
// before it is clamped into [-B, B]. Panics on n < 0.
func WithMaxRedraws(n int) GraphOption {
	if n < 0 {
		panic(fmt.Sprintf("core: WithMaxRedraws(%d)", n))
	}
	return func(c *graphConfig) { c.maxRedraws = n }
}

// NewGraph wraps store. Panics if store is nil.
// Complexity: O(len(opts)).
func NewGraph[E Payload](store Storage[E], opts ...GraphOption) *Graph[E] {
	if store == nil {
		panic("core: NewGraph(nil storage)")
	}
	cfg := graphConfig{
		truncation: DefaultTruncation,
		maxRedraws: DefaultMaxRedraws,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[E]{
		store:      store,
		truncation: cfg.truncation,
		maxRedraws: cfg.maxRedraws,
	}
}

// Truncation returns the sampler bound B.
func (g *Graph[E]) Truncation() float64 { return g.truncation }

// MaxRedraws returns the per-axis redraw budget.
func (g *Graph[E]) MaxRedraws() int { return g.maxRedraws }

// ClampedDraws returns how many axis draws exhausted the redraw budget and
// were clamped. Non-zero only with an adversarial or broken RandomSource.
func (g *Graph[E]) ClampedDraws() uint64 { return g.clamped.Load() }

// Nodes returns all nodes in storage order.
// Complexity: backend-defined, O(V) or O(V log V) for the shipped backends.
func (g *Graph[E]) Nodes() []Point {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.Nodes()
}

// Connections returns all connections in storage order.
func (g *Graph[E]) Connections() []Connection[E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.Connections()
}

// HasConnection reports whether from→to exists.
func (g *Graph[E]) HasConnection(from, to Point) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.HasConnection(from, to)
}

// ConnectionData returns the payload of from→to. ok is false when the
// connection has no payload or does not exist.
func (g *Graph[E]) ConnectionData(from, to Point) (data E, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.ConnectionData(from, to)
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph[E]) IsEmpty() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.IsEmpty()
}

// NodeCount returns the number of nodes.
func (g *Graph[E]) NodeCount() int {
	return len(g.Nodes())
}

// ConnectionCount returns the number of connections.
func (g *Graph[E]) ConnectionCount() int {
	return len(g.Connections())
}

// ContainsNode reports whether p is a node of the graph.
// Complexity: O(1) with a NodeLookup backend, O(V) otherwise.
func (g *Graph[E]) ContainsNode(p Point) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.containsNode(p)
}

func (g *Graph[E]) containsNode(p Point) bool {
	if nl, ok := g.store.(NodeLookup); ok {
		return nl.ContainsNode(p)
	}
	for _, n := range g.store.Nodes() {
		if n == p {
			return true
		}
	}
	return false
}

// Connection returns the connection from→to, or ErrConnectionNotFound.
func (g *Graph[E]) Connection(from, to Point) (Connection[E], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.store.HasConnection(from, to) {
		return Connection[E]{}, connErr(ErrConnectionNotFound, from, to)
	}
	data, ok := g.store.ConnectionData(from, to)
	if !ok {
		return NewConnection[E](from, to), nil
	}
	return NewConnectionWithData(from, to, data), nil
}

// Outgoing returns the targets of every connection leaving from.
// Returns ErrNodeNotFound when from is not a node.
func (g *Graph[E]) Outgoing(from Point) ([]Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.containsNode(from) {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, from)
	}
	if nav, ok := g.store.(Navigator); ok {
		return nav.Outgoing(from), nil
	}
	var out []Point
	for _, c := range g.store.Connections() {
		if c.From == from {
			out = append(out, c.To)
		}
	}
	return out, nil
}

// Incoming returns the sources of every connection entering to.
// Returns ErrNodeNotFound when to is not a node.
func (g *Graph[E]) Incoming(to Point) ([]Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.containsNode(to) {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, to)
	}
	if nav, ok := g.store.(Navigator); ok {
		return nav.Incoming(to), nil
	}
	var in []Point
	for _, c := range g.store.Connections() {
		if c.To == to {
			in = append(in, c.From)
		}
	}
	return in, nil
}

// Hash delegates to the backend; consistent with Equal across backends.
func (g *Graph[E]) Hash() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.Hash()
}
