// Package bfs finds a shortest word ladder in a wordgraph.Graph by
// breadth-first search, returning the BFS tree built up to the goal.
//
// What
//
//   - Explore words in non-decreasing distance (edge count) from a start word.
//   - Stop as soon as the goal is dequeued; the Result holds:
//   - Goal:   the word the search terminated on
//   - Order:  dequeue (visit) sequence
//   - Depth:  map from word → distance from start
//   - Parent: map from word → the word it was first discovered from
//   - Result.PathTo walks Parent back from Goal and reverses the walk.
//   - Hooks at three stages (OnEnqueue, OnDequeue, OnVisit) and an optional
//     MaxDepth bound.
//
// Why
//
//	In an unweighted graph a FIFO frontier with visit-once marking yields a
//	shortest path. Each word is enqueued at most once, so every Parent key is
//	written exactly once and the parent links form a tree rooted at start.
//
// Determinism
//
//	Neighbors are expanded in wordgraph order, which is fixed by dictionary
//	order. Repeated searches over the same graph return identical results.
//
// Complexity (V = words, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, visited set, Depth and Parent maps.
//
// Usage
//
//	path, err := bfs.ShortestPath(g, "cold", "warm")
//	switch {
//	case errors.Is(err, bfs.ErrInvalidWord):
//	    // start or goal is not a vertex; errors.As(err, &wordErr) names it
//	case errors.Is(err, bfs.ErrNoPath):
//	    // goal unreachable from start
//	}
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrInvalidWord      if start or goal is not a vertex of the graph.
//   - ErrNoPath           if the frontier empties (or MaxDepth is reached)
//     without dequeuing the goal.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Context errors and wrapped OnVisit errors.
package bfs
