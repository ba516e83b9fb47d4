// Package builder assembles road-network fixtures on top of core.Graph.
//
// Every topology factory returns a Constructor closure; BuildGraph wraps a
// storage backend in a core.Graph, resolves the functional options into a
// builderConfig and runs the constructors in order.
//
// Topologies (nodes are placed relative to WithOrigin, spaced by WithSpacing):
//
//   - Path(n):                n nodes on a horizontal line.
//   - Cycle(n):               n nodes on a circle of radius spacing.
//   - Star(n):                a hub at the origin with n spokes.
//   - Grid(rows, cols):       a rows×cols Manhattan grid.
//   - RandomGeometric(n,s,r): n nodes uniform in an s×s square, linked when
//     closer than r (needs WithSeed or WithRand).
//
// Roads are two-way by default: every link adds from→to and to→from.
// WithOneWay keeps only the first direction. Links that already exist are
// skipped, so constructors may share nodes (e.g. a Star on top of a Grid).
//
// Payloads: WithPayload(fn) attaches fn(from,to) to every new connection;
// the function's payload type must match the graph's, otherwise the
// constructor fails with ErrOptionViolation.
//
// Determinism: the same options, seed and constructor order always produce
// the same graph.
package builder
