// Package prim_kruskal computes spanning trees on an undirected *core.Graph
// with Prim's algorithm and Kruskal's algorithm, under any symmetric edge
// weight function and for either objective (minimum or maximum total).
//
// What & Why
//
//   - A spanning tree T ⊆ E connects all vertices of a connected graph with |V|-1 edges.
//     The minimum (maximum) spanning tree minimizes (maximizes) Σ w(e) over T.
//
//   - The weight is not read from the graph directly: callers pass a WeightFunc.
//     EdgeWeight uses the stored weight; closeness.TreeWeight derives a synthetic
//     weight from per-vertex labels and ignores the stored one.
//
// Algorithms Provided
//
//   - Prim(g, root, w) / PrimMax(g, root, w) ([]core.Edge, int64, error)
//
//   - Strategy: grow one tree from root. Candidate crossing edges live in a
//     frontier.Queue; stale entries (target already in the tree) are skipped
//     on extraction instead of being removed eagerly.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Kruskal(g, w) / KruskalMax(g, w) ([]core.Edge, int64, error)
//
//   - Strategy: stable-sort all non-loop edges by weight, then merge components
//     with dsu, skipping edges whose endpoints are already connected.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
// Maximum trees
//
//	Both *Max variants negate every weight, run the minimizing routine, and
//	negate the returned edge weights and total. Prim's and Kruskal's
//	correctness does not depend on the sign of the weights, so this is the
//	maximum spanning tree under w.
//
// Error Conditions
//
//	- ErrInvalidGraph        graph or weight function is nil.
//	- core.ErrVertexNotFound Prim root outside [0, n).
//	- ErrDisconnected        |V| == 0, or |V| > 1 and the graph is not connected.
//	- ErrUnknownMethod       Compute with an unsupported Method or Objective.
//
// Determinism
//
//   - Prim breaks ties by (weight, from, to) through frontier ordering.
//   - Kruskal breaks ties by insertion order (stable sort over graph.Edges()).
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
