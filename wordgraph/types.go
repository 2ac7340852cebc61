// SPDX-License-Identifier: MIT
// Package: weavesolve/wordgraph
//
// types.go — the Graph type and its read-only accessors.

package wordgraph

import "context"

// Graph is an immutable word adjacency structure.
//
// words keeps dictionary order; adj maps each word to its one-character
// neighbors in discovery order. Every dictionary word has an adj entry,
// possibly empty.
type Graph struct {
	words []string
	adj   map[string][]string
	edges int
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	ctx context.Context
}

// WithContext attaches ctx to the telemetry emitted by Build.
// The build itself is synchronous and does not observe cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *buildOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Has reports whether word is a vertex of g.
func (g *Graph) Has(word string) bool {
	if g == nil {
		return false
	}
	_, ok := g.adj[word]
	return ok
}

// Neighbors returns the words adjacent to word, in discovery order, and
// whether word is a vertex at all. The returned slice is shared with the
// graph and must not be modified.
func (g *Graph) Neighbors(word string) ([]string, bool) {
	if g == nil {
		return nil, false
	}
	nbrs, ok := g.adj[word]
	if !ok {
		return nil, false
	}
	return nbrs[:len(nbrs):len(nbrs)], true
}

// Adjacent reports whether a and b are joined by an edge.
func (g *Graph) Adjacent(a, b string) bool {
	nbrs, ok := g.Neighbors(a)
	if !ok {
		return false
	}
	for _, w := range nbrs {
		if w == b {
			return true
		}
	}
	return false
}

// Words returns a copy of the vertex list in dictionary order.
func (g *Graph) Words() []string {
	if g == nil {
		return nil
	}
	out := make([]string, len(g.words))
	copy(out, g.words)
	return out
}

// Order is the number of vertices.
func (g *Graph) Order() int {
	if g == nil {
		return 0
	}
	return len(g.words)
}

// Size is the number of undirected edges.
func (g *Graph) Size() int {
	if g == nil {
		return 0
	}
	return g.edges
}

// Degree returns the number of neighbors of word, or 0 if absent.
func (g *Graph) Degree(word string) int {
	nbrs, _ := g.Neighbors(word)
	return len(nbrs)
}
