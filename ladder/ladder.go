// SPDX-License-Identifier: MIT
// Package ladder ties a dictionary, its word graph and the BFS search into a
// single solver.
//
// A Ladder builds its graph once in New and answers any number of Solve
// calls against it. The graph is read-only after construction and every
// Solve owns its own search state, so a Ladder is safe for concurrent use.
//
//	l, err := ladder.New(dictionary.Embedded())
//	path, err := l.Solve(ctx, "cold", "warm") // [cold cord card ward warm]
package ladder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/katalvlaran/weavesolve/bfs"
	"github.com/katalvlaran/weavesolve/dictionary"
	"github.com/katalvlaran/weavesolve/wordgraph"
)

// ErrLengthMismatch is returned when a query word is not as long as the
// dictionary words.
var ErrLengthMismatch = errors.New("ladder: word length does not match dictionary")

// Ladder answers shortest word-ladder queries over a fixed dictionary.
type Ladder struct {
	graph    *wordgraph.Graph
	length   int
	maxDepth int
	logger   *slog.Logger
}

// Option configures a Ladder.
type Option func(*config)

type config struct {
	ctx      context.Context
	logger   *slog.Logger
	maxDepth int
}

// WithLogger sets the logger used for build and query diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithContext sets the context the graph build is traced under.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithMaxDepth bounds every ladder to at most d steps; 0 means no bound.
// Negative values are rejected by New.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		c.maxDepth = d
	}
}

// New validates words and builds the word graph.
// words must be non-empty and of uniform length; they are used as given,
// so callers wanting case-insensitive queries supply lower-case words.
func New(words []string, opts ...Option) (*Ladder, error) {
	c := config{
		ctx:    context.Background(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.maxDepth < 0 {
		return nil, fmt.Errorf("%w: MaxDepth cannot be negative (%d)", bfs.ErrOptionViolation, c.maxDepth)
	}

	n, err := dictionary.WordLength(words)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	g := wordgraph.Build(words, wordgraph.WithContext(c.ctx))
	c.logger.Debug("word graph built",
		"words", g.Order(),
		"edges", g.Size(),
		"length", n,
		"elapsed", time.Since(began),
	)

	return &Ladder{graph: g, length: n, maxDepth: c.maxDepth, logger: c.logger}, nil
}

// Graph exposes the underlying read-only word graph.
func (l *Ladder) Graph() *wordgraph.Graph { return l.graph }

// WordLength is the common length of the dictionary words.
func (l *Ladder) WordLength() int { return l.length }

// Solve returns a shortest ladder from start to stop, both inclusive.
//
// Query words are trimmed and lower-cased. Errors:
//   - ErrLengthMismatch if either word has the wrong length.
//   - bfs.ErrInvalidWord (as *bfs.WordError) if a word is not in the dictionary.
//   - bfs.ErrNoPath (as *bfs.WordError) if no ladder exists.
//   - ctx errors if ctx is done mid-search.
func (l *Ladder) Solve(ctx context.Context, start, stop string) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start = normalize(start)
	stop = normalize(stop)

	ctx, span := startSolveSpan(ctx, start, stop)
	defer span.End()
	began := time.Now()

	path, err := l.solve(ctx, start, stop)
	recordSolve(ctx, span, time.Since(began), len(path)-1, err)

	if err != nil {
		l.logger.Debug("no ladder", "start", start, "stop", stop, "error", err)
		return nil, err
	}
	l.logger.Debug("ladder found", "start", start, "stop", stop, "steps", len(path)-1)
	return path, nil
}

func (l *Ladder) solve(ctx context.Context, start, stop string) ([]string, error) {
	for _, w := range []string{start, stop} {
		if n := utf8.RuneCountInString(w); n != l.length {
			return nil, fmt.Errorf("%w: %q has %d letters, dictionary words have %d", ErrLengthMismatch, w, n, l.length)
		}
	}
	return bfs.ShortestPath(l.graph, start, stop,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(l.maxDepth),
	)
}

func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
