// Package core provides the in-memory Graph used by every algorithm in closetree:
// an undirected, weighted graph over a fixed vertex set [0, n).
//
// The Graph G = (V,E) is intentionally small:
//
//   - Vertices are dense integer IDs fixed at construction (NewGraph(n)).
//   - Each undirected edge is stored once in an insertion-ordered catalog and
//     twice in the adjacency lists (once per endpoint).
//   - Weights are non-negative int64 values.
//   - Self-loops and parallel edges are accepted unless WithSimple() is set.
//   - A sync.RWMutex guards edges and adjacency, so a built graph can be read
//     from several goroutines.
//
// Configuration Options (GraphOption):
//
//	– WithSimple()
//	    AddEdge(v,v,…) → ErrLoopNotAllowed, a second AddEdge(u,v,…) → ErrMultiEdgeNotAllowed.
//
//	– WithEdgeCapacity(m)
//	    Pre-size the edge catalog when the edge count is known (edge-list input).
//
// Core Methods:
//
//	AddEdge(u, v int, w int64) error   // O(1) amortized
//	Neighbors(v int) ([]Edge, error)   // O(deg(v)), each edge has From == v
//	Edges() []Edge                     // O(E), insertion order
//	VertexCount(), EdgeCount()         // O(1)
//	Clone()                            // O(V+E)
//
// Errors are sentinel values (ErrVertexNotFound, ErrNegativeWeight, …) wrapped
// with call context; branch on them with errors.Is.
package core
