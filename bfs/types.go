// Package bfs provides the result type and error definitions
// for breadth-first search over a core.Graph.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is outside [0, n).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Unreached marks vertices the search never reached in BFSResult.Depth.
const Unreached = -1

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance in edges from the start, Unreached if never reached.
type BFSResult struct {
	Order []int
	Depth []int
}

// Unreachable returns the vertices never reached, ascending.
func (r *BFSResult) Unreachable() []int {
	var out []int
	for v, d := range r.Depth {
		if d == Unreached {
			out = append(out, v)
		}
	}

	return out
}
