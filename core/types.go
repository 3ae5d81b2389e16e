// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count was passed to NewGraph.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a vertex outside [0, n).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates AddEdge was called with a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a simple graph.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted on a simple graph.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one undirected connection between two vertices.
//
// In adjacency lists From is always the vertex whose list holds the entry,
// so Neighbors(v) yields edges with From == v.
type Edge struct {
	// From is the endpoint the edge is viewed from.
	From int

	// To is the opposite endpoint.
	To int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// Reverse returns the same edge viewed from its other endpoint.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSimple rejects self-loops and parallel edges in AddEdge.
// Without it the graph accepts both, matching raw edge-list input.
func WithSimple() GraphOption {
	return func(g *Graph) { g.simple = true }
}

// WithEdgeCapacity pre-sizes the edge catalog for m edges.
func WithEdgeCapacity(m int) GraphOption {
	return func(g *Graph) {
		if m > 0 {
			g.edgeCap = m
		}
	}
}

// Graph is an undirected, weighted graph over the vertex set [0, n).
//
// The vertex count is fixed at construction. Each undirected edge is stored
// once in edges (insertion order) and twice in adjacency (both directions,
// a self-loop once). mu guards edges and adjacency.
type Graph struct {
	mu sync.RWMutex

	simple  bool // reject loops and parallel edges
	edgeCap int  // initial capacity hint for edges

	n         int
	edges     []Edge
	adjacency [][]Edge
}

// NewGraph creates a Graph with n isolated vertices.
// By default loops and parallel edges are accepted.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}
	g := &Graph{n: n}
	for _, opt := range opts {
		opt(g)
	}
	g.edges = make([]Edge, 0, g.edgeCap)
	g.adjacency = make([][]Edge, n)

	return g, nil
}
