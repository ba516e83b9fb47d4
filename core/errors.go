// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors for the core package.
// Policy:
//   - Two class sentinels (ErrInvalidArgument, ErrIllegalState) and a set of
//     specific sentinels that wrap them, so callers can branch on either.
//   - Call sites add context with %w; never compare error strings.

package core

import (
	"errors"
	"fmt"
)

// Class sentinels.
var (
	// ErrInvalidArgument marks a call whose arguments violate a precondition.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrIllegalState marks a call that is not valid for the graph's current state.
	ErrIllegalState = errors.New("core: illegal state")
)

// Specific sentinels. Each one satisfies errors.Is against its class.
var (
	// ErrCircularConnection indicates an attempt to add a connection from a node to itself.
	ErrCircularConnection = fmt.Errorf("%w: circular connection", ErrInvalidArgument)

	// ErrConnectionExists indicates an attempt to add a (from,to) pair that is already present.
	ErrConnectionExists = fmt.Errorf("%w: connection already exists", ErrInvalidArgument)

	// ErrConnectionNotFound indicates an operation on a connection that does not exist.
	ErrConnectionNotFound = fmt.Errorf("%w: connection does not exist", ErrInvalidArgument)

	// ErrNonFiniteNode indicates a connection endpoint with a NaN or infinite coordinate.
	ErrNonFiniteNode = fmt.Errorf("%w: non-finite node coordinate", ErrInvalidArgument)

	// ErrNodeNotFound indicates an operation on a node that is not in the graph.
	ErrNodeNotFound = fmt.Errorf("%w: node does not exist", ErrInvalidArgument)

	// ErrEmptyGraph indicates sampling or bounding on a graph without nodes.
	ErrEmptyGraph = fmt.Errorf("%w: empty graph", ErrIllegalState)

	// ErrNonFiniteTarget indicates the sampler produced a non-finite target,
	// e.g. because the bounding box extent overflows float64.
	ErrNonFiniteTarget = fmt.Errorf("%w: non-finite sample target", ErrIllegalState)
)

// ErrUnsupported indicates the storage backend lacks an optional capability.
var ErrUnsupported = errors.New("core: operation not supported by storage")

// connErr attaches the endpoints of the offending connection to sentinel.
func connErr(sentinel error, from, to Point) error {
	return fmt.Errorf("%w: %s -> %s", sentinel, from, to)
}
