// SPDX-License-Identifier: MIT
// Package: geomgraph/builder
//
// impl_random_geometric.go — RandomGeometric(n, side, radius).
//
// Contract:
//   • n ≥ 2 (ErrTooFewVertices); side, radius finite and > 0
//     (ErrInvalidParameter); cfg.rng != nil (ErrNeedRandSource).
//   • Draws n points uniformly in [origin, origin+side)², x then y per point.
//     Duplicate draws are kept once.
//   • Links every pair i<j with Distance ≤ radius.
//   • Nodes without a neighbour within radius are not added: a node exists
//     only as a connection endpoint.
//
// Complexity: O(n²) pair scan.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geomgraph/core"
)

const (
	methodRandomGeometric = "RandomGeometric"
	minGeometricNodes     = 2
)

// RandomGeometric returns a Constructor for a random geometric road network.
func RandomGeometric[E core.Payload](n int, side, radius float64) Constructor[E] {
	return func(g *core.Graph[E], cfg builderConfig) error {
		if n < minGeometricNodes {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodRandomGeometric, n, minGeometricNodes, ErrTooFewVertices)
		}
		if !positiveFinite(side) || !positiveFinite(radius) {
			return fmt.Errorf("%s: side=%g, radius=%g (must be finite and > 0): %w",
				methodRandomGeometric, side, radius, ErrInvalidParameter)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}
		l, err := newLinker(methodRandomGeometric, g, cfg)
		if err != nil {
			return err
		}

		pts := make([]core.Point, 0, n)
		seen := make(map[core.Point]struct{}, n)
		for i := 0; i < n; i++ {
			x := cfg.origin.X + cfg.rng.Float64()*side
			y := cfg.origin.Y + cfg.rng.Float64()*side
			p := core.Pt(x, y)
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			pts = append(pts, p)
		}

		for i := 0; i < len(pts); i++ {
			for j := i + 1; j < len(pts); j++ {
				if core.Distance(pts[i], pts[j]) > radius {
					continue
				}
				if err = l.link(pts[i], pts[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
