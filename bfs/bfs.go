package bfs

import (
	"fmt"

	"github.com/katalvlaran/geomgraph/core"
)

type queueItem struct {
	p     core.Point
	depth int
}

// walker encapsulates mutable BFS state.
type walker[E core.Payload] struct {
	graph   *core.Graph[E]
	opts    BFSOptions
	queue   []queueItem
	visited map[core.Point]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartNotFound, ErrOptionViolation, the context
// error on cancellation, or any OnVisit error.
func BFS[E core.Payload](g *core.Graph[E], start core.Point, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.ContainsNode(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[E]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.Point]bool, n),
		res: &BFSResult{
			Order:  make([]core.Point, 0, n),
			Depth:  make(map[core.Point]int, n),
			Parent: make(map[core.Point]core.Point, n),
		},
	}
	w.enqueue(start, 0, nil)
	return w.res, w.loop()
}

func (w *walker[E]) enqueue(p core.Point, d int, parent *core.Point) {
	w.visited[p] = true
	w.res.Depth[p] = d
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.queue = append(w.queue, queueItem{p: p, depth: d})
}

func (w *walker[E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.p)
		if err := w.opts.OnVisit(item.p, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.p, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker[E]) neighbors(p core.Point) ([]core.Point, error) {
	if w.opts.Reverse {
		return w.graph.Incoming(p)
	}
	return w.graph.Outgoing(p)
}

func (w *walker[E]) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	nbrs, err := w.neighbors(item.p)
	if err != nil {
		return fmt.Errorf("bfs: neighbours of %s: %w", item.p, err)
	}
	for _, nbr := range nbrs {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.p, nbr) {
			continue
		}
		parent := item.p
		w.enqueue(nbr, nextDepth, &parent)
	}
	return nil
}
