// SPDX-License-Identifier: MIT
// Package: geomgraph/builder
//
// impl_grid.go — Grid(rows, cols): a Manhattan street grid.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1, rows*cols ≥ 2 (else ErrTooFewVertices).
//   • Node (r,c) sits at origin + (c*spacing, r*spacing).
//   • Each node links to its right (r,c+1) and upper (r+1,c) neighbour.
//
// Complexity: O(rows*cols).
//
// Determinism:
//   • Row-major emission; Right before Up for each node.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geomgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid[E core.Payload](rows, cols int) Constructor[E] {
	return func(g *core.Graph[E], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each ≥ %d, at least 2 nodes): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		l, err := newLinker(methodGrid, g, cfg)
		if err != nil {
			return err
		}

		at := func(r, c int) core.Point {
			return core.Pt(cfg.origin.X+float64(c)*cfg.spacing, cfg.origin.Y+float64(r)*cfg.spacing)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = l.link(at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = l.link(at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
