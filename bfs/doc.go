// Package bfs provides breadth-first reachability over a core.Graph.
//
// What
//
//   - BFS explores nodes in non-decreasing hop count from a start point and
//     returns a BFSResult:
//   - Order:  visit sequence
//   - Depth:  node → hops from start
//   - Parent: node → predecessor in the BFS tree
//   - WithReverse walks connections backwards (Incoming instead of Outgoing),
//     answering "who can reach start" instead of "what can start reach".
//   - StronglyConnected reports whether every node reaches every other node,
//     i.e. whether any pickup can be served from any delivery point.
//
// Determinism
//
//	Neighbours are visited in the order the storage returns them from
//	Outgoing/Incoming. Both bundled backends return a stable order
//	(adjlist: sorted by X then Y; matrix: insertion order).
//
// Complexity (V = nodes, E = connections)
//
//   - Time:   O(V + E) with a Navigator backend.
//   - Memory: O(V).
//
// Usage
//
//	res, err := bfs.BFS(g, core.Pt(0, 0), bfs.WithMaxDepth(3))
//	ok, err := bfs.StronglyConnected(g)
package bfs
