// Package prim_kruskal provides an implementation of Kruskal's spanning-tree algorithm.
// It produces a slice of edges forming the tree, using the dsu package for union-find.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/closetree/core"
	"github.com/katalvlaran/closetree/dsu"
	"github.com/rs/zerolog"
)

// Kruskal computes the minimum spanning tree of an undirected graph under weight.
//
// Error Conditions:
//   - ErrInvalidGraph   : if graph or weight is nil.
//   - ErrDisconnected   : if |V| == 0 or |V| > 1 but the graph is not fully connected.
//   - ErrWeightOverflow : if the tree total does not fit in an int64.
//
// Steps:
//  1. Collect all edges via graph.Edges(), skip self-loops.
//  2. Stable-sort by ascending weight; ties keep insertion order.
//  3. Union endpoints of each edge whose endpoints are in different sets.
//  4. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph, weight WeightFunc) ([]core.Edge, int64, error) {
	return kruskal(graph, weight, 1, zerolog.Nop())
}

// KruskalMax computes the maximum spanning tree under weight.
func KruskalMax(graph *core.Graph, weight WeightFunc) ([]core.Edge, int64, error) {
	return kruskal(graph, weight, -1, zerolog.Nop())
}

func kruskal(graph *core.Graph, weight WeightFunc, sign int64, log zerolog.Logger) ([]core.Edge, int64, error) {
	// Validate that graph and weight function are present.
	if graph == nil || weight == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.VertexCount()
	// No vertices: nothing to span.
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	// Single vertex: empty tree, zero total.
	if n == 1 {
		return []core.Edge{}, 0, nil
	}
	// A max tree is the min tree under negated weights.
	w := signed(weight, sign)

	// 1. Collect candidate edges with their weight computed once.
	all := graph.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		// Self-loops never join two components.
		if e.From == e.To {
			continue
		}
		e.Weight = w(e)
		edges = append(edges, e)
	}

	// 2. Stable sort by ascending weight so ties keep insertion order.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Build the tree: each vertex starts in its own set.
	sets := dsu.New(n)
	mst := make([]core.Edge, 0, n-1)
	var total int64
	for _, e := range edges {
		// 3a. Same set already: the edge would close a cycle.
		if !sets.Union(e.From, e.To) {
			continue
		}
		// 3b. Accumulate without wrapping.
		next, err := addCost(total, e.Weight)
		if err != nil {
			return nil, 0, fmt.Errorf("Kruskal: edge %d→%d: %w", e.From, e.To, err)
		}
		total = next
		mst = append(mst, e)
		log.Trace().Int("from", e.From).Int("to", e.To).Int64("cost", sign*e.Weight).Msg("tree edge")
		// 3c. A spanning tree has exactly n-1 edges; stop early.
		if len(mst) == n-1 {
			break
		}
	}

	// 4. Fewer than n-1 edges means more than one component.
	if len(mst) < n-1 {
		return nil, 0, fmt.Errorf("Kruskal: %d components: %w", sets.Count(), ErrDisconnected)
	}

	// Undo the negation of a max run.
	mst, total = unsign(mst, total, sign)

	return mst, total, nil
}
