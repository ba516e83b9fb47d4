// SPDX-License-Identifier: MIT
// Package: geomgraph/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/geomgraph/core"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new seeded *rand.Rand (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSpacing sets the distance between neighbouring nodes (grid pitch, path
// step, cycle/star radius). Panics unless s is finite and > 0.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic(fmt.Sprintf("builder: WithSpacing(%g)", s))
	}
	return func(c *builderConfig) { c.spacing = s }
}

// WithOrigin anchors every topology at p. Panics on non-finite coordinates.
func WithOrigin(p core.Point) BuilderOption {
	if !p.IsFinite() {
		panic(fmt.Sprintf("builder: WithOrigin(%s)", p))
	}
	return func(c *builderConfig) { c.origin = p }
}

// WithOneWay makes every link a single directed connection.
func WithOneWay() BuilderOption {
	return func(c *builderConfig) { c.oneWay = true }
}

// WithPayload attaches fn(from, to) to every new connection. E must match
// the payload type of the graph being built. Panics on nil.
func WithPayload[E core.Payload](fn func(from, to core.Point) E) BuilderOption {
	if fn == nil {
		panic("builder: WithPayload(nil)")
	}
	return func(c *builderConfig) { c.dataFn = fn }
}
