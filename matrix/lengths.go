// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/geomgraph/core"
)

// Lengths exports g as a dense length matrix.
//
// index lists the nodes in g's storage order; m[i][j] is the resolved length
// of index[i]→index[j] (payload override or Euclidean distance), 0 on the
// diagonal and +Inf where no connection exists.
//
// Complexity: O(V² + E) time and space.
func Lengths[E core.Payload](g core.View[E]) (index []core.Point, m [][]float64) {
	index = g.Nodes()
	pos := make(map[core.Point]int, len(index))
	for i, p := range index {
		pos[p] = i
	}

	m = make([][]float64, len(index))
	for i := range m {
		m[i] = make([]float64, len(index))
		for j := range m[i] {
			if i != j {
				m[i][j] = math.Inf(1)
			}
		}
	}
	for _, c := range g.Connections() {
		m[pos[c.From]][pos[c.To]] = c.Length()
	}

	return index, m
}
