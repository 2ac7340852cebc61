// SPDX-License-Identifier: MIT
// Package wordgraph builds the implicit adjacency graph behind a word ladder.
//
// What
//
//   - Every dictionary word is a vertex.
//   - An undirected edge joins two words that differ in exactly one position
//     (see OneCharDiff).
//   - Adjacency is stored explicitly in both directions, so Neighbors(a)
//     contains b iff Neighbors(b) contains a.
//
// Determinism
//
//	Build scans unordered pairs (i, j) with i < j in dictionary order and
//	appends each match to both endpoints. The neighbor order of every vertex
//	is therefore a pure function of the dictionary order, and every traversal
//	that walks Neighbors in order (bfs.Search) is reproducible.
//
// Immutability
//
//	A *Graph is never mutated after Build returns. It may be shared freely
//	between goroutines running independent searches; no locking is required.
//
// Complexity (N = words, L = word length)
//
//   - Time:   O(N² · L) pair comparisons, each pair examined once.
//   - Memory: O(N + E) for the vertex table and adjacency lists.
//
// Usage
//
//	g := wordgraph.Build([]string{"cold", "cord", "card", "ward", "warm"})
//	nbrs, ok := g.Neighbors("cord") // [cold card], true
package wordgraph
