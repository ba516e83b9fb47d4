package demand

import (
	"sort"

	"github.com/katalvlaran/geomgraph/core"
)

// NodeCount is how often a node appeared as pickup or delivery.
type NodeCount struct {
	Node       core.Point
	Pickups    int
	Deliveries int
}

// Total returns Pickups + Deliveries.
func (c NodeCount) Total() int { return c.Pickups + c.Deliveries }

// Stats summarises a batch of requests.
type Stats struct {
	Requests     int
	MeanDistance float64
	MaxDistance  float64
	// Nodes is sorted by Total descending, ties by node order.
	Nodes []NodeCount
}

// Summarize computes Stats for reqs.
func Summarize(reqs []Request) Stats {
	s := Stats{Requests: len(reqs)}
	counts := make(map[core.Point]*NodeCount)
	at := func(p core.Point) *NodeCount {
		c, ok := counts[p]
		if !ok {
			c = &NodeCount{Node: p}
			counts[p] = c
		}
		return c
	}

	var sum float64
	for _, r := range reqs {
		at(r.Pickup).Pickups++
		at(r.Delivery).Deliveries++
		sum += r.Distance
		if r.Distance > s.MaxDistance {
			s.MaxDistance = r.Distance
		}
	}
	if len(reqs) > 0 {
		s.MeanDistance = sum / float64(len(reqs))
	}

	s.Nodes = make([]NodeCount, 0, len(counts))
	for _, c := range counts {
		s.Nodes = append(s.Nodes, *c)
	}
	sort.Slice(s.Nodes, func(i, j int) bool {
		a, b := s.Nodes[i], s.Nodes[j]
		if a.Total() != b.Total() {
			return a.Total() > b.Total()
		}
		return a.Node.Less(b.Node)
	})
	return s
}
