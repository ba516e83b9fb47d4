// SPDX-License-Identifier: MIT
// Package: geomgraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil          (pure/deterministic unless seeded)
//   • spacing = 1.0
//   • origin  = (0,0)
//   • oneWay  = false        (two-way roads)
//   • dataFn  = nil          (connections carry no payload)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/geomgraph/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	rng     *rand.Rand // nil means "no randomness"
	spacing float64    // distance between neighbouring nodes, > 0
	origin  core.Point // anchor of every topology
	oneWay  bool       // emit only from→to

	// dataFn holds a func(from, to core.Point) E for some payload E; the
	// constructor asserts it against the graph's payload type.
	dataFn any
}

const (
	defaultSpacing = 1.0
)

// newBuilderConfig applies options in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
