// SPDX-License-Identifier: MIT
// Package: geomgraph/builder
//
// impl_cycle.go — Cycle(n): a ring road.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Nodes sit on a circle of radius spacing centred at origin, node 0 at
//     angle 0, counter-clockwise.
//   • Node i links to node (i+1) mod n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geomgraph/core"
)

const (
	methodCycle = "Cycle"
	minCycleLen = 3
)

// Cycle returns a Constructor that builds a ring of n nodes.
func Cycle[E core.Payload](n int) Constructor[E] {
	return func(g *core.Graph[E], cfg builderConfig) error {
		if n < minCycleLen {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodCycle, n, minCycleLen, ErrTooFewVertices)
		}
		l, err := newLinker(methodCycle, g, cfg)
		if err != nil {
			return err
		}
		pts := ring(cfg.origin, cfg.spacing, n)
		for i := range pts {
			if err = l.link(pts[i], pts[(i+1)%n]); err != nil {
				return err
			}
		}
		return nil
	}
}
