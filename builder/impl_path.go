// SPDX-License-Identifier: MIT
// Package: geomgraph/builder
//
// impl_path.go — Path(n): n nodes on a horizontal line.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Node i sits at origin + (i*spacing, 0) and links to node i+1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geomgraph/core"
)

const (
	methodPath = "Path"
	minPathLen = 2
)

// Path returns a Constructor that builds a straight road of n nodes.
func Path[E core.Payload](n int) Constructor[E] {
	return func(g *core.Graph[E], cfg builderConfig) error {
		if n < minPathLen {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPath, n, minPathLen, ErrTooFewVertices)
		}
		l, err := newLinker(methodPath, g, cfg)
		if err != nil {
			return err
		}
		prev := cfg.origin
		for i := 1; i < n; i++ {
			next := core.Pt(cfg.origin.X+float64(i)*cfg.spacing, cfg.origin.Y)
			if err = l.link(prev, next); err != nil {
				return err
			}
			prev = next
		}
		return nil
	}
}
