// SPDX-License-Identifier: MIT
//
// File: storage.go
// Role: Contracts between Graph and its collaborators: storage backends and
//       the random source used by sampling.

package core

// View is the read-only face of a graph. Both Storage backends and *Graph
// satisfy it, which is what lets Equal compare any two of them.
type View[E Payload] interface {
	// Nodes returns every node. Order is backend-defined but stable
	// between calls that are not separated by a mutation.
	Nodes() []Point

	// Connections returns every connection, with the same order guarantee.
	Connections() []Connection[E]

	// HasConnection reports whether from→to is stored.
	HasConnection(from, to Point) bool

	// ConnectionData returns the payload of from→to, if any.
	ConnectionData(from, to Point) (E, bool)

	// IsEmpty reports whether the graph has no nodes.
	IsEmpty() bool
}

// Storage is implemented by every concrete backend.
//
// The two mutation hooks are only ever called by Graph after validation:
//   - InsertConnection: from != to and from→to is not yet stored.
//   - SwapConnectionData: from→to is stored.
//
// When hasData is false, data is the zero value and must be stored as such.
// Backends are not required to be safe for concurrent use; Graph serialises
// access to the storage it owns.
type Storage[E Payload] interface {
	View[E]

	// InsertConnection records from→to and, when new, both endpoints.
	InsertConnection(from, to Point, data E, hasData bool)

	// SwapConnectionData replaces the payload of from→to and returns the
	// previous one.
	SwapConnectionData(from, to Point, data E, hasData bool) (prev E, hadPrev bool)

	// Hash must agree with Equal: equal graphs hash equally, whatever their
	// backend. Use HashPoint and HashConnection with an order-independent
	// combination (sum) to get there.
	Hash() uint64
}

// Navigator is an optional Storage capability for adjacency queries.
// Without it Graph falls back to scanning Connections().
type Navigator interface {
	Outgoing(from Point) []Point
	Incoming(to Point) []Point
}

// NodeLookup is an optional Storage capability for O(1) node membership.
type NodeLookup interface {
	ContainsNode(p Point) bool
}

// ConnectionRemover is an optional Storage capability. Graph calls
// DeleteConnection only for connections that exist. Endpoints stay in the
// node set.
type ConnectionRemover interface {
	DeleteConnection(from, to Point)
}

// RandomSource supplies the draws used by the samplers. *math/rand.Rand
// satisfies it. The graph never seeds or otherwise mutates the source beyond
// drawing from it.
type RandomSource interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int

	// Float64 returns a uniform float in [0, 1).
	Float64() float64

	// NormFloat64 returns a standard normal variate.
	NormFloat64() float64
}
