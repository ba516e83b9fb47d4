package bfs

import (
	"github.com/katalvlaran/geomgraph/core"
)

// StronglyConnected reports whether every node can reach every other node
// along directed connections. It runs one forward and one reverse BFS from
// the first node; both must cover the node set. Empty graphs and single
// nodes are trivially connected.
func StronglyConnected[E core.Payload](g *core.Graph[E], opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	nodes := g.Nodes()
	if len(nodes) <= 1 {
		return true, nil
	}
	for _, dir := range [][]Option{nil, {WithReverse()}} {
		res, err := BFS(g, nodes[0], append(append([]Option{}, opts...), dir...)...)
		if err != nil {
			return false, err
		}
		if len(res.Order) != len(nodes) {
			return false, nil
		}
	}
	return true, nil
}

// Unreachable returns the nodes start cannot reach, in g.Nodes() order.
func Unreachable[E core.Payload](g *core.Graph[E], start core.Point, opts ...Option) ([]core.Point, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}
	var out []core.Point
	for _, p := range g.Nodes() {
		if !res.Reached(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
