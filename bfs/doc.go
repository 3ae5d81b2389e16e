// Package bfs provides breadth-first search over a core.Graph.
//
// BFS returns the visit order and the edge-count distance of every vertex
// from the start; vertices in other components keep Depth == Unreached and
// are listed by Unreachable. The closeness command uses that list to name
// the vertices a root cannot reach when labeling fails.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible.
//
// Complexity: O(V + E) time, O(V) memory. Edge weights are ignored.
package bfs
