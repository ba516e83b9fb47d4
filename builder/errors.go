// SPDX-License-Identifier: MIT
// Package: geomgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Grid: rows=0 ...: <sentinel>").
//   • Constructors never panic; option constructors (WithX) do on
//     meaningless input.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidParameter indicates a non-size parameter out of its domain, e.g.
// a non-positive or non-finite radius.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an option that can only be checked at build
// time, e.g. a WithPayload function for another payload type.
var ErrOptionViolation = errors.New("builder: invalid option value")
