// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Value types shared by every backend: Point, ConnectionData payloads
//       and the directed Connection.
// Policy:
//   - Values only; no locking, no storage.
//   - Connection does NOT enforce from != to. Graph rejects circular
//     connections on insertion.

package core

import (
	"fmt"
	"math"
)

// Point is an immutable 2D coordinate. Equality is exact (==), no tolerance.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool {
	return p == q
}

// Less orders points by X, then by Y. Backends use it for stable iteration.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
// Complexity: O(1).
func Distance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ConnectionData is the optional payload carried by a connection.
// Length returns an explicit length override; ok == false means the
// Euclidean distance between the endpoints is used instead.
type ConnectionData interface {
	Length() (length float64, ok bool)
}

// Payload constrains the connection payload type parameter. Payloads must be
// comparable so that connections can be compared and used as set keys.
type Payload interface {
	comparable
	ConnectionData
}

// NoData is the payload type for graphs that store topology only.
type NoData struct{}

// Length never overrides the geometric distance.
func (NoData) Length() (float64, bool) { return 0, false }

// LengthData carries an explicit length, e.g. a travel cost or a curved road
// length that differs from the straight-line distance.
type LengthData struct {
	Value float64
}

// Length always reports the stored value.
func (d LengthData) Length() (float64, bool) { return d.Value, true }

// RoadData describes a road segment: an optional length override and the
// maximum speed allowed on it.
type RoadData struct {
	// Distance is the road length; used only when HasDistance is set.
	Distance    float64
	HasDistance bool

	// MaxSpeed is expressed in distance units per time unit; 0 means unknown.
	MaxSpeed float64
}

// Length reports the road length override, if any.
func (d RoadData) Length() (float64, bool) { return d.Distance, d.HasDistance }

// TravelTime returns length/MaxSpeed. ok is false when MaxSpeed is not set.
func (d RoadData) TravelTime(length float64) (t float64, ok bool) {
	if d.MaxSpeed <= 0 {
		return 0, false
	}
	return length / d.MaxSpeed, true
}

// Connection is a directed edge From→To with an optional payload.
//
// The zero payload is stored whenever no data is attached, so two
// connections are == exactly when endpoints, presence and payload agree.
type Connection[E Payload] struct {
	From Point
	To   Point

	data    E
	hasData bool
}

// NewConnection returns a connection without payload.
func NewConnection[E Payload](from, to Point) Connection[E] {
	return Connection[E]{From: from, To: to}
}

// NewConnectionWithData returns a connection carrying data.
func NewConnectionWithData[E Payload](from, to Point, data E) Connection[E] {
	return Connection[E]{From: from, To: to, data: data, hasData: true}
}

// Data returns the payload and whether one is attached.
func (c Connection[E]) Data() (E, bool) {
	return c.data, c.hasData
}

// HasData reports whether a payload is attached.
func (c Connection[E]) HasData() bool {
	return c.hasData
}

// Length resolves the connection length: the payload override when present,
// otherwise Distance(From, To).
func (c Connection[E]) Length() float64 {
	return resolveLength(c.From, c.To, c.data, c.hasData)
}

// String renders "from->to".
func (c Connection[E]) String() string {
	if c.hasData {
		return fmt.Sprintf("%s->%s [%v]", c.From, c.To, c.data)
	}
	return fmt.Sprintf("%s->%s", c.From, c.To)
}

// resolveLength is the single length rule used by Connection and Graph.
func resolveLength[E Payload](from, to Point, data E, hasData bool) float64 {
	if hasData {
		if l, ok := data.Length(); ok {
			return l
		}
	}
	return Distance(from, to)
}
