// Package bfs provides tunable options, result and error definitions
// for breadth-first search over a wordgraph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrInvalidWord is returned when a query word is not a vertex of the graph.
	ErrInvalidWord = errors.New("bfs: invalid word")

	// ErrNoPath is returned when the goal cannot be reached from the start.
	ErrNoPath = errors.New("bfs: no path found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// WordError attaches the offending word(s) to ErrInvalidWord or ErrNoPath.
// Use errors.As to retrieve it; errors.Is matches the wrapped sentinel.
type WordError struct {
	// Word is the word the error is about: the invalid word, or the start
	// word for ErrNoPath.
	Word string

	// Goal is set for ErrNoPath.
	Goal string

	// Err is the sentinel.
	Err error
}

// Error implements error.
func (e *WordError) Error() string {
	if errors.Is(e.Err, ErrNoPath) {
		return fmt.Sprintf("%v from %q to %q", e.Err, e.Word, e.Goal)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Word)
}

// Unwrap returns the sentinel.
func (e *WordError) Unwrap() error { return e.Err }

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a word is enqueued, with its depth.
	OnEnqueue func(word string, depth int)

	// OnDequeue is called immediately before visiting a word.
	OnDequeue func(word string, depth int)

	// OnVisit is called when visiting a word. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(word string, depth int) error

	// MaxDepth, if > 0, bounds the ladder length in steps.
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no-op hooks
// and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(word string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the number of steps a ladder may take.
//
//	d > 0:  words deeper than d are never enqueued
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the BFS tree grown until the goal was dequeued.
//   - Start, Goal: the query words.
//   - Order: words in dequeue sequence, ending with Goal.
//   - Depth: distance from Start for every enqueued word.
//   - Parent: discovering word for every enqueued word except Start.
type Result struct {
	Start  string
	Goal   string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the ladder from Start to Goal, both inclusive.
// When Start == Goal the ladder is the single word.
func (r *Result) PathTo() []string {
	path := make([]string, 0, r.Depth[r.Goal]+1)
	for cur := r.Goal; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Steps is the number of edges on the ladder.
func (r *Result) Steps() int { return r.Depth[r.Goal] }
