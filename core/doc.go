// Package core provides the spatial graph abstraction of geomgraph: a
// mutable, directed, weighted graph whose nodes are 2D points.
//
// A Graph[E] composes any Storage[E] backend (see packages adjlist and
// matrix) and adds the generic algorithms on top of it:
//
//   - Connection management with invariant enforcement: finite endpoints
//     (ErrNonFiniteNode), no self-loops (ErrCircularConnection) and no
//     duplicate (from,to) pairs (ErrConnectionExists). Validation happens before the storage hook.
//   - Length resolution: a payload's Length override wins, otherwise the
//     Euclidean distance between the endpoints.
//   - Structural equality (Equal) independent of the storage backend, with
//     backend hashes that agree with it.
//   - Sampling: RandomConnection and RandomNodeUniform are uniform;
//     RandomNode is biased toward the centre of the bounding box.
//
// Payloads:
//
//	NoData      topology only
//	LengthData  explicit length
//	RoadData    optional length + maximum speed
//
// Concurrency:
//
// Graph serialises access to its storage with a sync.RWMutex. Single calls
// are atomic; AddConnections and Merge lock per element and are not
// transactional. A shared RandomSource must be serialised by the caller.
//
// Errors:
//
//	ErrInvalidArgument      class: ErrCircularConnection, ErrConnectionExists,
//	                        ErrConnectionNotFound, ErrNodeNotFound,
//	                        ErrNonFiniteNode
//	ErrIllegalState         class: ErrEmptyGraph, ErrNonFiniteTarget
//	ErrUnsupported          optional storage capability missing
//
// Quick example:
//
//	g := core.NewGraph[core.NoData](adjlist.New[core.NoData]())
//	_ = g.AddConnection(core.Pt(0, 0), core.Pt(3, 4))
//	l, _ := g.ConnectionLength(core.Pt(0, 0), core.Pt(3, 4)) // 5
package core
