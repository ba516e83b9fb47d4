// Package network turns a config.Config into the road network demand is
// sampled from.
package network

import (
	"fmt"

	"github.com/katalvlaran/geomgraph/adjlist"
	"github.com/katalvlaran/geomgraph/builder"
	"github.com/katalvlaran/geomgraph/core"
	"github.com/katalvlaran/geomgraph/internal/config"
	"github.com/katalvlaran/geomgraph/matrix"
)

// Road is the payload carried by every generated connection.
type Road = core.RoadData

// NewStore returns an empty storage backend of the given kind.
func NewStore(b config.Backend) (core.Storage[Road], error) {
	switch b {
	case config.BackendAdjList:
		return adjlist.New[Road](), nil
	case config.BackendMatrix:
		return matrix.New[Road](), nil
	default:
		return nil, fmt.Errorf("network: unknown backend %q", b)
	}
}

// GraphOptions maps the sampler section onto core options.
func GraphOptions(s config.SamplerConfig) []core.GraphOption {
	return []core.GraphOption{
		core.WithMaxRedraws(s.MaxRedraws),
		core.WithTruncation(s.Truncation),
	}
}

// Build creates the configured network. cfg must have passed Validate.
func Build(cfg *config.Config) (*core.Graph[Road], error) {
	store, err := NewStore(cfg.Backend)
	if err != nil {
		return nil, err
	}
	gopts := GraphOptions(cfg.Sampler)
	nc := cfg.Network

	if nc.Kind == config.NetworkConnections {
		g := core.NewGraph[Road](store, gopts...)
		if err := g.AddConnections(Connections(nc.Connections)); err != nil {
			return nil, fmt.Errorf("network: %w", err)
		}
		return g, nil
	}

	bopts := []builder.BuilderOption{
		builder.WithSeed(cfg.Seed),
		builder.WithSpacing(nc.Spacing),
	}
	if nc.OneWay {
		bopts = append(bopts, builder.WithOneWay())
	}
	if nc.MaxSpeed > 0 {
		speed := nc.MaxSpeed
		bopts = append(bopts, builder.WithPayload(func(_, _ core.Point) Road {
			return Road{MaxSpeed: speed}
		}))
	}

	var cons builder.Constructor[Road]
	switch nc.Kind {
	case config.NetworkGrid:
		cons = builder.Grid[Road](nc.Rows, nc.Cols)
	case config.NetworkPath:
		cons = builder.Path[Road](nc.N)
	case config.NetworkCycle:
		cons = builder.Cycle[Road](nc.N)
	case config.NetworkStar:
		cons = builder.Star[Road](nc.N)
	case config.NetworkRandom:
		cons = builder.RandomGeometric[Road](nc.N, nc.Side, nc.Radius)
	default:
		return nil, fmt.Errorf("network: unknown kind %q", nc.Kind)
	}

	g, err := builder.BuildGraph(store, gopts, bopts, cons)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	return g, nil
}

// Connections converts explicit road entries into connections. A road with
// neither length nor speed carries no payload.
func Connections(in []config.ConnectionConfig) []core.Connection[Road] {
	out := make([]core.Connection[Road], 0, len(in))
	for _, cc := range in {
		from := core.Pt(cc.From[0], cc.From[1])
		to := core.Pt(cc.To[0], cc.To[1])
		if cc.Length == nil && cc.MaxSpeed == 0 {
			out = append(out, core.NewConnection[Road](from, to))
			continue
		}
		r := Road{MaxSpeed: cc.MaxSpeed}
		if cc.Length != nil {
			r.Distance, r.HasDistance = *cc.Length, true
		}
		out = append(out, core.NewConnectionWithData(from, to, r))
	}
	return out
}
