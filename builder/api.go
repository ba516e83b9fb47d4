// SPDX-License-Identifier: MIT
// Package: geomgraph/builder
//
// api.go — public surface: Constructor type and BuildGraph/Apply.
//
// Contract:
//   • BuildGraph wraps store in a core.Graph with gopts, resolves bopts,
//     then runs every constructor in order.
//   • The first constructor error aborts the build and is returned wrapped
//     as "BuildGraph: <err>"; the partial graph is discarded.
//   • A nil constructor fails with ErrConstructFailed.
//
// Determinism:
//   • Same options + same constructor order ⇒ same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geomgraph/core"
)

const (
	methodBuildGraph = "BuildGraph"
	methodApply      = "Apply"
)

// Constructor mutates g using cfg. Implementations validate first and add
// connections in a documented deterministic order.
type Constructor[E core.Payload] func(g *core.Graph[E], cfg builderConfig) error

// BuildGraph creates a graph on store and applies the constructors.
func BuildGraph[E core.Payload](
	store core.Storage[E],
	gopts []core.GraphOption,
	bopts []BuilderOption,
	cons ...Constructor[E],
) (*core.Graph[E], error) {
	g := core.NewGraph[E](store, gopts...)
	if err := run(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
	}
	return g, nil
}

// Apply runs the constructors against an existing graph. Unlike BuildGraph
// the connections added before a failure stay in g.
func Apply[E core.Payload](g *core.Graph[E], bopts []BuilderOption, cons ...Constructor[E]) error {
	if err := run(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("%s: %w", methodApply, err)
	}
	return nil
}

func run[E core.Payload](g *core.Graph[E], cfg builderConfig, cons []Constructor[E]) error {
	for i, c := range cons {
		if c == nil {
			return fmt.Errorf("constructor[%d] is nil: %w", i, ErrConstructFailed)
		}
		if err := c(g, cfg); err != nil {
			return err
		}
	}
	return nil
}
