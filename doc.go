// Package geomgraph is a spatial road-network toolkit: directed, weighted
// graphs whose nodes are 2D points, with a centre-biased node sampler for
// generating transport demand.
//
// Packages:
//
//	core/     — Graph[E], Point, Connection[E], payloads, equality, sampling
//	adjlist/  — map-of-maps storage backend (sorted iteration)
//	matrix/   — dense adjacency-matrix backend + length matrix export
//	builder/  — Grid, Path, Cycle, Star, RandomGeometric fixtures
//	bfs/      — reachability and strong connectivity
//
// The demandgen command (cmd/demandgen) wires these together: it builds a
// configured network and prints pickup/delivery requests drawn from it.
//
// Quick start:
//
//	g := adjlist.NewGraph[core.NoData]()
//	_ = g.AddConnection(core.Pt(0, 0), core.Pt(3, 4))
//	p, _ := g.RandomNode(rand.New(rand.NewSource(1)))
package geomgraph
