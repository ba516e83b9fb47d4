// SPDX-License-Identifier: MIT
//
// File: methods_connections.go
// Role: Connection lifecycle: add (single, batch, merge), payload changes and
//       removal. Validation always precedes the storage hook, so a failed
//       single-connection call never mutates the graph.

package core

import "fmt"

// AddConnection adds from→to without payload.
//
// Errors:
//   - ErrNonFiniteNode if an endpoint has a NaN or infinite coordinate.
//   - ErrCircularConnection if from == to.
//   - ErrConnectionExists if from→to is already present.
//
// Complexity: O(1) plus the backend insert cost.
func (g *Graph[E]) AddConnection(from, to Point) error {
	var zero E
	return g.addConnection(from, to, zero, false)
}

// AddConnectionWithData adds from→to carrying data. Same errors as AddConnection.
func (g *Graph[E]) AddConnectionWithData(from, to Point, data E) error {
	return g.addConnection(from, to, data, true)
}

// Add inserts c, keeping its payload if it has one. Same errors as AddConnection.
func (g *Graph[E]) Add(c Connection[E]) error {
	return g.addConnection(c.From, c.To, c.data, c.hasData)
}

func (g *Graph[E]) addConnection(from, to Point, data E, hasData bool) error {
	// NaN never equals itself, so it would slip past both checks below.
	if !from.IsFinite() || !to.IsFinite() {
		return connErr(ErrNonFiniteNode, from, to)
	}
	if from == to {
		return connErr(ErrCircularConnection, from, to)
	}
	if !hasData {
		var zero E
		data = zero
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.store.HasConnection(from, to) {
		return connErr(ErrConnectionExists, from, to)
	}
	g.store.InsertConnection(from, to, data, hasData)

	return nil
}

// AddConnections adds every connection in order. It is not transactional:
// it stops at the first failure and connections added before it stay in
// place. The returned error names the failing index.
// Complexity: O(len(conns)) inserts.
func (g *Graph[E]) AddConnections(conns []Connection[E]) error {
	for i, c := range conns {
		if err := g.Add(c); err != nil {
			return fmt.Errorf("AddConnections[%d]: %w", i, err)
		}
	}
	return nil
}

// Merge adds every connection of other to g. Fails like AddConnections when a
// connection already exists; merging a non-empty graph into itself therefore
// fails on the first connection and leaves g unchanged.
func (g *Graph[E]) Merge(other View[E]) error {
	// Snapshot first: other may be g itself.
	return g.AddConnections(other.Connections())
}

// SetConnectionData replaces the payload of from→to with data and returns the
// previous payload (hadPrev == false when there was none).
// Errors: ErrConnectionNotFound.
func (g *Graph[E]) SetConnectionData(from, to Point, data E) (prev E, hadPrev bool, err error) {
	return g.changeConnectionData(from, to, data, true)
}

// RemoveConnectionData clears the payload of from→to and returns the previous one.
// Errors: ErrConnectionNotFound.
func (g *Graph[E]) RemoveConnectionData(from, to Point) (prev E, hadPrev bool, err error) {
	var zero E
	return g.changeConnectionData(from, to, zero, false)
}

func (g *Graph[E]) changeConnectionData(from, to Point, data E, hasData bool) (E, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.store.HasConnection(from, to) {
		var zero E
		return zero, false, connErr(ErrConnectionNotFound, from, to)
	}
	prev, hadPrev := g.store.SwapConnectionData(from, to, data, hasData)

	return prev, hadPrev, nil
}

// RemoveConnection deletes from→to. Its endpoints remain nodes of the graph.
//
// Errors:
//   - ErrConnectionNotFound if from→to does not exist.
//   - ErrUnsupported if the backend does not implement ConnectionRemover.
func (g *Graph[E]) RemoveConnection(from, to Point) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.store.HasConnection(from, to) {
		return connErr(ErrConnectionNotFound, from, to)
	}
	rm, ok := g.store.(ConnectionRemover)
	if !ok {
		return fmt.Errorf("%w: RemoveConnection", ErrUnsupported)
	}
	rm.DeleteConnection(from, to)

	return nil
}
