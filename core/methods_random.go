// SPDX-License-Identifier: MIT
//
// File: methods_random.go
// Role: Sampling of existing graph elements.
//
// RandomNode is deliberately NOT uniform. It draws a target point from a
// truncated normal centred on the bounding box and snaps it to the nearest
// node, so generated demand clusters around the network centre instead of
// spreading over sparse peripheral nodes. RandomNodeUniform and
// RandomConnection are uniform.
//
// Determinism:
//   - Draw order is fixed: x, y, then x redraws, then y redraws.
//   - Ties are broken by storage order (first minimum wins).

package core

import (
	"fmt"
	"math"
)

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Width returns MaxX-MinX.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether p lies inside the box, borders included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// boundsOf scans nodes once. nodes must be non-empty.
func boundsOf(nodes []Point) Box {
	b := Box{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, p := range nodes {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// BoundingBox returns the bounding box of all nodes.
// Errors: ErrEmptyGraph.
// Complexity: O(V).
func (g *Graph[E]) BoundingBox() (Box, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := g.store.Nodes()
	if len(nodes) == 0 {
		return Box{}, ErrEmptyGraph
	}
	return boundsOf(nodes), nil
}

// RandomNode returns a node chosen with a bias toward the centre of the
// bounding box.
//
// Steps:
//  1. Bounding box over all nodes.
//  2. gx, gy ← rng.NormFloat64().
//  3. Redraw gx while |gx| > B, then gy likewise (NaN counts as out of
//     range). After MaxRedraws redraws the value is clamped to [-B, B]
//     (NaN to 0) and counted in ClampedDraws.
//  4. Map [-B, B] → [0, 1] → [min, max] per axis. An axis with min == max is
//     not rescaled: its target coordinate is that shared value.
//  5. Return the node nearest to the target; first minimum in storage order.
//
// The target has standard deviation extent/(2B) per axis.
//
// Errors: ErrEmptyGraph, ErrNonFiniteTarget (extent overflows float64).
// Complexity: O(V) plus the expected ~1 redraw per axis.
func (g *Graph[E]) RandomNode(rng RandomSource) (Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := g.store.Nodes()
	if len(nodes) == 0 {
		return Point{}, fmt.Errorf("RandomNode: %w", ErrEmptyGraph)
	}
	box := boundsOf(nodes)

	gx := rng.NormFloat64()
	gy := rng.NormFloat64()
	gx = g.truncate(rng, gx)
	gy = g.truncate(rng, gy)

	target := Point{
		X: g.rescale(gx, box.MinX, box.MaxX),
		Y: g.rescale(gy, box.MinY, box.MaxY),
	}
	if !target.IsFinite() {
		return Point{}, fmt.Errorf("RandomNode: %w: %s in box [%g,%g]x[%g,%g]",
			ErrNonFiniteTarget, target, box.MinX, box.MaxX, box.MinY, box.MaxY)
	}

	return nearest(nodes, target), nil
}

// truncate redraws v until it falls within [-B, B] or the budget runs out.
func (g *Graph[E]) truncate(rng RandomSource, v float64) float64 {
	b := g.truncation
	for redraws := 0; !(v >= -b && v <= b); redraws++ {
		if redraws >= g.maxRedraws {
			g.clamped.Add(1)
			return clamp(v, b)
		}
		v = rng.NormFloat64()
	}
	return v
}

func clamp(v, b float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < -b:
		return -b
	case v > b:
		return b
	}
	return v
}

// rescale maps v ∈ [-B, B] onto [lo, hi].
func (g *Graph[E]) rescale(v, lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	b := g.truncation
	u := (v + b) / (2 * b) // [0,1]
	return u*(hi-lo) + lo
}

// nearest returns the first node with minimal distance to target.
func nearest(nodes []Point, target Point) Point {
	best := nodes[0]
	minDist := math.Inf(1)
	for _, p := range nodes {
		if d := Distance(p, target); d < minDist {
			minDist = d
			best = p
		}
	}
	return best
}

// RandomNodeUniform returns a node chosen uniformly: index rng.Intn(V) in
// storage order.
// Errors: ErrEmptyGraph.
func (g *Graph[E]) RandomNodeUniform(rng RandomSource) (Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := g.store.Nodes()
	if len(nodes) == 0 {
		return Point{}, fmt.Errorf("RandomNodeUniform: %w", ErrEmptyGraph)
	}
	return nodes[rng.Intn(len(nodes))], nil
}

// RandomConnection returns a connection chosen uniformly: index rng.Intn(E)
// in storage order.
// Errors: ErrEmptyGraph (also when nodes remain but no connection does).
// Complexity: O(E) to materialise the connection list.
func (g *Graph[E]) RandomConnection(rng RandomSource) (Connection[E], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.store.IsEmpty() {
		return Connection[E]{}, fmt.Errorf("RandomConnection: %w", ErrEmptyGraph)
	}
	conns := g.store.Connections()
	if len(conns) == 0 {
		return Connection[E]{}, fmt.Errorf("RandomConnection: %w: no connections", ErrEmptyGraph)
	}
	return conns[rng.Intn(len(conns))], nil
}
