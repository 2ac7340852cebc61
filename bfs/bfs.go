// Package bfs provides breadth-first search over a wordgraph.Graph,
// returning the parent links needed to rebuild a shortest word ladder.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/weavesolve/wordgraph"
)

// queueItem pairs a word with its BFS depth.
type queueItem struct {
	word  string
	depth int
}

// walker encapsulates mutable BFS state. It is owned by a single Search
// call and never shared.
type walker struct {
	graph   *wordgraph.Graph
	goal    string
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Search runs breadth-first search on g from start until goal is dequeued,
// applying any number of functional Options.
//
// Returns ErrGraphNil for a nil graph, ErrInvalidWord (as *WordError) when
// start or goal is not a vertex, ErrNoPath (as *WordError) when goal is
// unreachable, ErrOptionViolation for bad options, or a context or hook error.
func Search(g *wordgraph.Graph, start, goal string, opts ...Option) (*Result, error) {
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

	// both query words must be vertices; start is reported first
	for _, w := range []string{start, goal} {
		if !g.Has(w) {
			return nil, &WordError{Word: w, Err: ErrInvalidWord}
		}
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		goal:    goal,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Start:  start,
			Goal:   goal,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start (no parent)
	w.enqueue(start, 0, "")
	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &WordError{Word: start, Goal: goal, Err: ErrNoPath}
	}
	return w.res, nil
}

// ShortestPath is Search followed by Result.PathTo.
func ShortestPath(g *wordgraph.Graph, start, goal string, opts ...Option) ([]string, error) {
	res, err := Search(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	return res.PathTo(), nil
}

// enqueue marks word visited at depth d, records its parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(word string, d int, parent string) {
	w.visited[word] = true
	w.res.Depth[word] = d
	if d > 0 {
		w.res.Parent[word] = parent
	}
	w.opts.OnEnqueue(word, d)
	w.queue = append(w.queue, queueItem{word: word, depth: d})
}

// loop processes the queue until the goal is dequeued, the queue empties,
// or an error occurs. It reports whether the goal was reached.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return false, err
		}
		if item.word == w.goal {
			return true, nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return false, err
		}
	}
	return false, nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.word, item.depth)
	return item
}

// visit records the word in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.word)
	if err := w.opts.OnVisit(item.word, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.word, err)
	}
	return nil
}

// enqueueNeighbors enqueues every unseen neighbor of item within MaxDepth.
// A word without an adjacency entry is reported as ErrInvalidWord.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, ok := w.graph.Neighbors(item.word)
	if !ok {
		return &WordError{Word: item.word, Err: ErrInvalidWord}
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, next, item.word)
		}
	}
	return nil
}
