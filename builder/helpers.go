// SPDX-License-Identifier: MIT
// Package: geomgraph/builder
//
// helpers.go — shared emission helpers used by all constructors.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geomgraph/core"
)

// payloadFn resolves cfg.dataFn for the graph's payload type. A nil
// function and nil error mean "no payload".
func payloadFn[E core.Payload](method string, cfg builderConfig) (fn func(from, to core.Point) E, err error) {
	if cfg.dataFn == nil {
		return nil, nil
	}
	fn, ok := cfg.dataFn.(func(from, to core.Point) E)
	if !ok {
		var zero E
		return nil, fmt.Errorf("%s: WithPayload type %T does not produce %T: %w",
			method, cfg.dataFn, zero, ErrOptionViolation)
	}
	return fn, nil
}

// linker emits roads for one constructor run.
type linker[E core.Payload] struct {
	method string
	g      *core.Graph[E]
	oneWay bool
	data   func(from, to core.Point) E
}

func newLinker[E core.Payload](method string, g *core.Graph[E], cfg builderConfig) (*linker[E], error) {
	fn, err := payloadFn[E](method, cfg)
	if err != nil {
		return nil, err
	}
	return &linker[E]{method: method, g: g, oneWay: cfg.oneWay, data: fn}, nil
}

// link adds from→to and, for two-way roads, to→from. Existing connections
// are left untouched.
func (l *linker[E]) link(from, to core.Point) error {
	if err := l.arc(from, to); err != nil {
		return err
	}
	if l.oneWay {
		return nil
	}
	return l.arc(to, from)
}

func (l *linker[E]) arc(from, to core.Point) error {
	if l.g.HasConnection(from, to) {
		return nil
	}
	var err error
	if l.data != nil {
		err = l.g.AddConnectionWithData(from, to, l.data(from, to))
	} else {
		err = l.g.AddConnection(from, to)
	}
	if err != nil {
		return fmt.Errorf("%s: AddConnection(%s→%s): %w", l.method, from, to, err)
	}
	return nil
}

// ring places n points evenly on a circle of radius r around c, starting at
// angle 0 and going counter-clockwise.
func ring(c core.Point, r float64, n int) []core.Point {
	pts := make([]core.Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		theta := step * float64(i)
		pts[i] = core.Pt(c.X+r*math.Cos(theta), c.Y+r*math.Sin(theta))
	}
	return pts
}
