// Package closeness labels every vertex of a rooted, connected graph with a
// closeness value and builds the minimum and maximum spanning trees whose
// edge weights are derived from those labels.
//
// Closeness labeling (Label):
//
//	The root is settled with closeness 0 and every edge incident to it is
//	pushed into a frontier.Queue valued w + closeness[root]. The cheapest
//	entry (cost, u, v) is popped repeatedly; a settled v is a stale entry and
//	is skipped, otherwise v is settled with closeness[v] = cost and every
//	edge to an unsettled neighbour s is pushed valued w(v,s) + closeness[v].
//	With non-negative weights closeness[v] is the cheapest root→v path cost.
//
// Closeness trees (MinTree, MaxTree):
//
//	Each edge {u, v} weighs min(closeness[u], closeness[v]); the stored edge
//	weight is not used. MinTree runs Prim from the root on that weight;
//	MaxTree runs the same Prim on negated weights and negates the total.
//
// Solve runs the three passes in order. Each pass owns its settled set and
// frontier; the graph is only read.
//
// Vertex states per pass: Unsettled → Frontier-Candidate → Settled. No vertex
// leaves Settled; Labels.Settle enforces it.
//
// Errors:
//
//	ErrNilGraph        graph is nil.
//	ErrUngrounded      some vertex is unreachable from the root (frontier exhausted).
//	ErrUnsettled       a label was read before its vertex was settled.
//	ErrAlreadySettled  a vertex was settled twice.
//	ErrLabelMismatch   labels were computed for a graph of another size.
//	ErrWeightOverflow  a path cost does not fit in int64.
//	core.ErrVertexNotFound for a root outside [0, n).
//
// Complexity: O(E log E) per pass.
package closeness
