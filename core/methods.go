// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge insertion and read-only queries on Graph.
// Determinism:
//   - Edges() returns insertion order.
//   - Neighbors(v) returns incident edges in insertion order.
// Concurrency:
//   - AddEdge takes the write lock; every query takes the read lock.

package core

import "fmt"

// AddEdge inserts the undirected edge {u, v} with weight w.
// Both directions are stored in the adjacency lists; a self-loop is stored once.
//
// Errors:
//   - ErrVertexNotFound if u or v is outside [0, n).
//   - ErrNegativeWeight if w < 0.
//   - ErrLoopNotAllowed, ErrMultiEdgeNotAllowed on a simple graph.
//
// Complexity: O(1) amortized; O(deg(u)) on a simple graph.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, u, ErrVertexNotFound)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, v, ErrVertexNotFound)
	}
	if w < 0 {
		return fmt.Errorf("AddEdge(%d,%d): weight=%d: %w", u, v, w, ErrNegativeWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.simple {
		if u == v {
			return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
		}
		for _, e := range g.adjacency[u] {
			if e.To == v {
				return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
			}
		}
	}

	e := Edge{From: u, To: v, Weight: w}
	g.edges = append(g.edges, e)
	g.adjacency[u] = append(g.adjacency[u], e)
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], e.Reverse())
	}

	return nil
}

// HasVertex reports whether id lies in [0, n).
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < g.n
}

// VertexCount returns n.
func (g *Graph) VertexCount() int {
	return g.n
}

// EdgeCount returns the number of undirected edges added so far.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Simple reports whether the graph was built with WithSimple.
func (g *Graph) Simple() bool {
	return g.simple
}

// Neighbors returns the edges incident to id, each with From == id.
// The returned slice is a copy; callers may keep or modify it.
//
// Errors: ErrVertexNotFound if id is outside [0, n).
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// Edges returns every undirected edge once, in insertion order,
// oriented as it was passed to AddEdge.
// Complexity: O(m).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
