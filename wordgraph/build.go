// SPDX-License-Identifier: MIT
// Package: weavesolve/wordgraph
//
// build.go — pairwise construction of the one-character-difference graph.

package wordgraph

import (
	"context"
	"time"
	"unicode/utf8"
)

// OneCharDiff reports whether a and b differ in exactly one position.
//
// Runes are compared pairwise up to the shorter of the two words, so the
// result for words of unequal length is not meaningful; callers are expected
// to work with a uniform-length dictionary.
// Bytes that are not valid UTF-8 compare as themselves rather than all
// collapsing to U+FFFD.
// Complexity: O(L) time, O(L) space.
func OneCharDiff(a, b string) bool {
	return oneRuneDiff(decode(a), decode(b))
}

// decode splits s into runes. Each invalid byte b becomes -1-b, which no
// valid code point can equal.
func decode(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = -1 - rune(s[i])
		}
		out = append(out, r)
		i += size
	}
	return out
}

// Build constructs the word graph for the given dictionary.
//
// Each unordered pair (i, j), i < j, is examined exactly once; a match is
// recorded on both endpoints, appending to existing adjacency lists. Repeated
// words collapse onto their first occurrence. An empty dictionary yields an
// empty graph.
// Complexity: O(N² · L) time, O(N + E) space.
func Build(words []string, opts ...Option) *Graph {
	o := buildOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := startBuildSpan(o.ctx, len(words))
	defer span.End()
	began := time.Now()

	g := &Graph{
		words: make([]string, 0, len(words)),
		adj:   make(map[string][]string, len(words)),
	}
	for _, w := range words {
		if _, seen := g.adj[w]; seen {
			continue
		}
		g.adj[w] = nil
		g.words = append(g.words, w)
	}

	// Runes are decoded once per word rather than once per comparison.
	runes := make([][]rune, len(g.words))
	for i, w := range g.words {
		runes[i] = decode(w)
	}

	for i := 0; i < len(g.words); i++ {
		// pairs before i were already examined from the other side
		for j := i + 1; j < len(g.words); j++ {
			if !oneRuneDiff(runes[i], runes[j]) {
				continue
			}
			a, b := g.words[i], g.words[j]
			g.adj[a] = append(g.adj[a], b)
			g.adj[b] = append(g.adj[b], a)
			g.edges++
		}
	}

	setBuildSpanResult(span, len(g.words), g.edges)
	recordBuildMetrics(ctx, time.Since(began), len(g.words), g.edges)

	return g
}

// oneRuneDiff is OneCharDiff over pre-decoded words.
func oneRuneDiff(a, b []rune) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	diff := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}
