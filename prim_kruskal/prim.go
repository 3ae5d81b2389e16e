// Package prim_kruskal provides an implementation of Prim's spanning-tree algorithm.
// It grows the tree from a specified root vertex using the lazy-deletion frontier.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/closetree/core"
	"github.com/katalvlaran/closetree/frontier"
	"github.com/rs/zerolog"
)

// Prim computes the minimum spanning tree of an undirected graph under weight,
// growing outwards from root.
//
// Error Conditions:
//   - ErrInvalidGraph        : if graph or weight is nil.
//   - ErrDisconnected        : if |V| == 0 or the graph is not fully connected.
//   - core.ErrVertexNotFound : if root is outside [0, n).
//   - ErrWeightOverflow      : if the tree total does not fit in an int64.
//
// Steps:
//  1. Validate inputs; |V| == 1 yields the trivial empty tree.
//  2. Mark root as visited and push every edge incident to root into the frontier.
//  3. While the tree has < |V|-1 edges:
//     a. Pop the smallest entry (u→v); an empty frontier means the graph is disconnected.
//     b. If v is already visited, skip it (stale entry).
//     c. Otherwise add (u→v), mark v visited, accumulate the weight.
//     d. Push all edges from v to unvisited neighbors.
//  4. Restore the caller-facing sign and return the tree.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root int, weight WeightFunc) ([]core.Edge, int64, error) {
	return prim(graph, root, weight, 1, zerolog.Nop())
}

// PrimMax computes the maximum spanning tree under weight by running Prim on
// negated weights and negating the result back.
func PrimMax(graph *core.Graph, root int, weight WeightFunc) ([]core.Edge, int64, error) {
	return prim(graph, root, weight, -1, zerolog.Nop())
}

func prim(graph *core.Graph, root int, weight WeightFunc, sign int64, log zerolog.Logger) ([]core.Edge, int64, error) {
	// 1. Validate that graph and weight function are present.
	if graph == nil || weight == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.VertexCount()
	// No vertices: there is nothing to span, treat as disconnected.
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	// The root must be one of the vertices.
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("Prim: root %d: %w", root, core.ErrVertexNotFound)
	}
	// Single vertex: empty tree, zero total.
	if n == 1 {
		return []core.Edge{}, 0, nil
	}
	// A max tree is the min tree under negated weights.
	w := signed(weight, sign)

	// 2. Initialize visited set, tree container and frontier.
	visited := make([]bool, n)       // vertices already in the tree
	mst := make([]core.Edge, 0, n-1) // will hold exactly n-1 edges
	var total int64                  // running sum of sign·weight
	pq := frontier.New(n)            // candidate crossing edges

	// expand pushes every edge from v to a vertex outside the tree.
	expand := func(v int) error {
		nbrs, err := graph.Neighbors(v)
		if err != nil {
			return err
		}
		for _, e := range nbrs {
			// Edges into the tree (and self-loops) can never be taken.
			if !visited[e.To] {
				pq.Push(frontier.Entry{Cost: w(e), From: e.From, To: e.To})
			}
		}

		return nil
	}

	// 2a. Mark root as visited and seed the frontier with its edges.
	visited[root] = true
	if err := expand(root); err != nil {
		return nil, 0, err
	}

	// 3. Main loop: extract the cheapest crossing entry until n-1 edges are taken.
	for len(mst) < n-1 {
		// 3a. Pop the minimal entry; none left means some vertex is unreachable.
		item, ok := pq.Pop()
		if !ok {
			return nil, 0, fmt.Errorf("Prim: spanned %d of %d vertices: %w", len(mst)+1, n, ErrDisconnected)
		}
		// 3b. Stale entry: its target joined the tree after it was pushed.
		if visited[item.To] {
			continue
		}
		// 3c. Take the edge and accumulate its weight without wrapping.
		next, err := addCost(total, item.Cost)
		if err != nil {
			return nil, 0, fmt.Errorf("Prim: edge %d→%d: %w", item.From, item.To, err)
		}
		total = next
		visited[item.To] = true
		mst = append(mst, core.Edge{From: item.From, To: item.To, Weight: item.Cost})
		log.Trace().Int("from", item.From).Int("to", item.To).Int64("cost", sign*item.Cost).Msg("tree edge")

		// 3d. Push the new vertex's edges to unvisited neighbors.
		if err := expand(item.To); err != nil {
			return nil, 0, err
		}
	}

	// 4. Undo the negation of a max run.
	mst, total = unsign(mst, total, sign)

	return mst, total, nil
}
