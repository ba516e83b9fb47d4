// SPDX-License-Identifier: MIT
// Package: geomgraph/builder
//
// impl_star.go — Star(n): a hub at origin with n spokes.
//
// Contract:
//   • n ≥ 1 spokes (else ErrTooFewVertices).
//   • Leaves sit on a circle of radius spacing; hub→leaf is emitted first.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geomgraph/core"
)

const (
	methodStar   = "Star"
	minStarLeafs = 1
)

// Star returns a Constructor that builds a hub with n spokes.
func Star[E core.Payload](n int) Constructor[E] {
	return func(g *core.Graph[E], cfg builderConfig) error {
		if n < minStarLeafs {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodStar, n, minStarLeafs, ErrTooFewVertices)
		}
		l, err := newLinker(methodStar, g, cfg)
		if err != nil {
			return err
		}
		for _, leaf := range ring(cfg.origin, cfg.spacing, n) {
			if err = l.link(cfg.origin, leaf); err != nil {
				return err
			}
		}
		return nil
	}
}
