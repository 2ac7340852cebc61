// Package weavesolve solves word ladders: given two words of equal length,
// it finds a shortest chain of dictionary words between them in which each
// step changes exactly one letter.
//
// The module is organized as:
//
//	wordgraph/  — one-letter-difference graph over a dictionary
//	bfs/        — breadth-first search with parent links and PathTo
//	ladder/     — dictionary → graph → search facade, safe for concurrent use
//	dictionary/ — embedded word list, word files, system word list
//	cmd/weavesolve — command-line entry point
//
// Quick example:
//
//	COLD → CORD → CARD → WARD → WARM
//
//	go install github.com/katalvlaran/weavesolve/cmd/weavesolve@latest
package weavesolve
