package closeness

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/closetree/core"
	"github.com/katalvlaran/closetree/prim_kruskal"
)

// Tree is a spanning tree under the closeness weight.
// Each edge's Weight is min(closeness[From], closeness[To]).
type Tree struct {
	Edges []core.Edge
	Total int64
}

// Result bundles the three passes of Solve.
type Result struct {
	Labels *Labels
	Min    Tree
	Max    Tree
}

// TreeWeight returns the weight function min(closeness[u], closeness[v]).
// labels must be Complete; MinTree and MaxTree check that before use.
func TreeWeight(labels *Labels) prim_kruskal.WeightFunc {
	return func(e core.Edge) int64 {
		a, b := labels.value[e.From], labels.value[e.To]
		if a < b {
			return a
		}

		return b
	}
}

// MinTree builds the spanning tree minimizing Σ min(closeness[u], closeness[v]),
// grown from labels.Root().
func MinTree(g *core.Graph, labels *Labels, opts ...Option) (Tree, error) {
	return closenessTree(g, labels, prim_kruskal.ObjectiveMin, newOptions(opts))
}

// MaxTree builds the spanning tree maximizing Σ min(closeness[u], closeness[v]).
// The expansion is the minimizing one on negated weights.
func MaxTree(g *core.Graph, labels *Labels, opts ...Option) (Tree, error) {
	return closenessTree(g, labels, prim_kruskal.ObjectiveMax, newOptions(opts))
}

func closenessTree(g *core.Graph, labels *Labels, objective prim_kruskal.Objective, cfg Options) (Tree, error) {
	if g == nil {
		return Tree{}, ErrNilGraph
	}
	if labels == nil || labels.Len() != g.VertexCount() {
		return Tree{}, ErrLabelMismatch
	}
	if !labels.Complete() {
		return Tree{}, fmt.Errorf("%s tree: %d of %d settled: %w",
			objective, labels.SettledCount(), labels.Len(), ErrUnsettled)
	}

	edges, total, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{
		Method:    cfg.Method,
		Root:      labels.Root(),
		Objective: objective,
		Weight:    TreeWeight(labels),
		Logger:    cfg.Logger,
	})
	if errors.Is(err, prim_kruskal.ErrWeightOverflow) {
		return Tree{}, fmt.Errorf("%s tree: %w: %w", objective, ErrWeightOverflow, err)
	}
	if err != nil {
		return Tree{}, fmt.Errorf("%s tree: %w", objective, err)
	}
	cfg.Logger.Debug().Str("objective", string(objective)).Int64("total", total).Msg("closeness tree built")

	return Tree{Edges: edges, Total: total}, nil
}

// Solve labels g from root and builds both closeness trees.
// Result.Min.Total ≤ Result.Max.Total always holds.
func Solve(g *core.Graph, root int, opts ...Option) (*Result, error) {
	labels, err := Label(g, root, opts...)
	if err != nil {
		return nil, err
	}
	minTree, err := MinTree(g, labels, opts...)
	if err != nil {
		return nil, err
	}
	maxTree, err := MaxTree(g, labels, opts...)
	if err != nil {
		return nil, err
	}

	return &Result{Labels: labels, Min: minTree, Max: maxTree}, nil
}
