// Package demand generates pickup/delivery requests over a road network.
//
// Both endpoints of a request are drawn with the graph's node sampler, so
// with the Gaussian sampler requests concentrate around the centre of the
// network, the way real demand clusters downtown.
package demand

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/geomgraph/core"
)

// ErrDegenerateDemand is returned when no delivery distinct from the pickup
// could be drawn within the redraw bound, e.g. on a single-node network.
var ErrDegenerateDemand = errors.New("demand: delivery equals pickup")

// Mode selects the node sampler.
type Mode string

const (
	// Gaussian uses core.Graph.RandomNode (centre-biased).
	Gaussian Mode = "gaussian"
	// Uniform uses core.Graph.RandomNodeUniform.
	Uniform Mode = "uniform"
)

// DefaultMaxRedraws bounds delivery redraws per request.
const DefaultMaxRedraws = 100

// Request is one transport order between two network nodes.
type Request struct {
	ID       uuid.UUID
	Pickup   core.Point
	Delivery core.Point
	// Distance is the straight-line distance between the endpoints.
	Distance float64
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	mode       Mode
	maxRedraws int
	logger     *slog.Logger
	newID      func() uuid.UUID
}

// WithMode selects the sampler. Unknown modes fail in New.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithMaxRedraws bounds delivery redraws; 0 allows a single draw.
func WithMaxRedraws(n int) Option {
	return func(o *options) { o.maxRedraws = n }
}

// WithLogger sets the logger. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithIDFunc replaces uuid.New, e.g. with a deterministic source in tests.
func WithIDFunc(fn func() uuid.UUID) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// Generator draws requests from a graph. It is not safe for concurrent use:
// the random source is shared between calls.
type Generator[E core.Payload] struct {
	graph      *core.Graph[E]
	rng        core.RandomSource
	mode       Mode
	maxRedraws int
	logger     *slog.Logger
	newID      func() uuid.UUID
}

// New returns a Generator over g drawing from rng.
func New[E core.Payload](g *core.Graph[E], rng core.RandomSource, opts ...Option) (*Generator[E], error) {
	if g == nil || rng == nil {
		return nil, errors.New("demand: graph and random source are required")
	}
	o := options{
		mode:       Gaussian,
		maxRedraws: DefaultMaxRedraws,
		logger:     slog.Default(),
		newID:      uuid.New,
	}
	for _, opt := range opts {
		opt(&o)
	}
	switch o.mode {
	case Gaussian, Uniform:
	default:
		return nil, fmt.Errorf("demand: unknown mode %q", o.mode)
	}
	if o.maxRedraws < 0 {
		return nil, fmt.Errorf("demand: max redraws %d must be ≥ 0", o.maxRedraws)
	}
	return &Generator[E]{
		graph:      g,
		rng:        rng,
		mode:       o.mode,
		maxRedraws: o.maxRedraws,
		logger:     o.logger.With("component", "demand", "mode", string(o.mode)),
		newID:      o.newID,
	}, nil
}

func (gen *Generator[E]) draw() (core.Point, error) {
	if gen.mode == Uniform {
		return gen.graph.RandomNodeUniform(gen.rng)
	}
	return gen.graph.RandomNode(gen.rng)
}

// Next draws one request: the pickup first, then deliveries until one
// differs from the pickup.
func (gen *Generator[E]) Next() (Request, error) {
	pickup, err := gen.draw()
	if err != nil {
		return Request{}, fmt.Errorf("demand: pickup: %w", err)
	}
	for attempt := 0; attempt <= gen.maxRedraws; attempt++ {
		delivery, err := gen.draw()
		if err != nil {
			return Request{}, fmt.Errorf("demand: delivery: %w", err)
		}
		if delivery == pickup {
			continue
		}
		if attempt > 0 {
			gen.logger.Debug("delivery redrawn", "pickup", pickup.String(), "redraws", attempt)
		}
		return Request{
			ID:       gen.newID(),
			Pickup:   pickup,
			Delivery: delivery,
			Distance: core.Distance(pickup, delivery),
		}, nil
	}
	return Request{}, fmt.Errorf("%w: %s after %d redraws", ErrDegenerateDemand, pickup, gen.maxRedraws)
}

// Generate draws n requests, checking ctx between requests.
func (gen *Generator[E]) Generate(ctx context.Context, n int) ([]Request, error) {
	if n < 0 {
		return nil, fmt.Errorf("demand: request count %d must be ≥ 0", n)
	}
	out := make([]Request, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		r, err := gen.Next()
		if err != nil {
			return out, fmt.Errorf("request %d: %w", i, err)
		}
		out = append(out, r)
	}
	gen.logger.Info("demand generated",
		"requests", len(out),
		"nodes", gen.graph.NodeCount(),
		"clamped_draws", gen.graph.ClampedDraws(),
	)
	return out, nil
}
