// Package closetree computes closeness labels and closeness spanning trees
// on undirected, non-negatively weighted graphs.
//
// What it does
//
//	A modified Prim expansion from a root r assigns every vertex v its
//	closeness c(v): the cheapest total weight of a path r → v. The labels
//	then replace the edge weights, w'(u,v) = min(c(u), c(v)), and two
//	spanning trees are grown under w': one minimizing and one maximizing
//	the total.
//
// Layout
//
//	core/         — integer-indexed undirected weighted Graph
//	frontier/     — lazy-deletion (cost, from, to) priority queue
//	dsu/          — disjoint-set forest
//	prim_kruskal/ — spanning trees under a pluggable weight, min or max
//	closeness/    — Label, MinTree, MaxTree, Solve
//	subtree/      — cheapest k-edge subtree over unit-weight components
//	bfs/          — breadth-first reachability
//	verify/       — cross-checks against gonum
//	input/        — stdin token readers
//	config/       — viper settings, zerolog logger, .env loading
//	builder/      — deterministic graph generators for tests and benchmarks
//	cmd/closeness, cmd/subtree — command-line programs
//
// Quick start
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 1)
//	_ = g.AddEdge(0, 2, 5)
//	res, _ := closeness.Solve(g, 0)
//	fmt.Println(res.Min.Total, res.Max.Total) // 0 1
package closetree
