// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy of the Graph: flags, edges and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmptyLocked()
	clone.edges = append(clone.edges, g.edges...)
	for v, adj := range g.adjacency {
		if len(adj) == 0 {
			continue
		}
		clone.adjacency[v] = make([]Edge, len(adj))
		copy(clone.adjacency[v], adj)
	}

	return clone
}

// cloneEmptyLocked must be called with g.mu held.
func (g *Graph) cloneEmptyLocked() *Graph {
	return &Graph{
		simple:    g.simple,
		edgeCap:   len(g.edges),
		n:         g.n,
		edges:     make([]Edge, 0, len(g.edges)),
		adjacency: make([][]Edge, g.n),
	}
}
