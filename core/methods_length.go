// SPDX-License-Identifier: MIT

package core

// ConnectionLength resolves the length of from→to.
//
// If the connection carries a payload whose Length reports an override, that
// value is returned verbatim (it may encode travel time or road curvature).
// Otherwise the Euclidean distance between from and to is returned.
//
// Errors: ErrConnectionNotFound.
// Complexity: O(1) plus the backend lookup.
func (g *Graph[E]) ConnectionLength(from, to Point) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.store.HasConnection(from, to) {
		return 0, connErr(ErrConnectionNotFound, from, to)
	}
	data, ok := g.store.ConnectionData(from, to)

	return resolveLength(from, to, data, ok), nil
}
