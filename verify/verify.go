// SPDX-License-Identifier: MIT

// Package verify cross-checks closeness results against gonum.
//
// Closeness compares every label with the shortest-path distance that
// gonum's path.DijkstraFrom reports from the same root. Trees compares the
// min and max closeness-tree totals with gonum's path.Prim run on the
// synthetic weights min(closeness[u], closeness[v]) and on their negation.
//
// gonum weighs edges with float64, so the check is exact only while every
// label stays within ±2^53; larger labels return ErrUnverifiable.
package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/closetree/closeness"
	"github.com/katalvlaran/closetree/core"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

var (
	// ErrMismatch indicates a result that disagrees with the gonum oracle.
	ErrMismatch = errors.New("verify: result disagrees with gonum")

	// ErrUnverifiable indicates a value too large to compare exactly as float64.
	ErrUnverifiable = errors.New("verify: value exceeds exact float64 range")

	// ErrInput indicates nil or mismatched arguments.
	ErrInput = errors.New("verify: invalid input")
)

// maxExact is the largest integer a float64 holds exactly.
const maxExact = 1 << 53

// Closeness checks labels against gonum Dijkstra distances from labels.Root().
func Closeness(g *core.Graph, labels *closeness.Labels) error {
	vals, err := checkInput(g, labels)
	if err != nil {
		return err
	}

	wg := toGonum(g, func(e core.Edge) float64 { return float64(e.Weight) })
	shortest := path.DijkstraFrom(simple.Node(labels.Root()), wg)
	for v, c := range vals {
		if c > maxExact {
			return fmt.Errorf("Closeness: vertex %d label %d: %w", v, c, ErrUnverifiable)
		}
		want := shortest.WeightTo(int64(v))
		if float64(c) != want {
			return fmt.Errorf("Closeness: vertex %d: got %d, gonum %v: %w", v, c, want, ErrMismatch)
		}
	}

	return nil
}

// Trees checks the min and max closeness-tree totals against gonum Prim.
func Trees(g *core.Graph, labels *closeness.Labels, minTree, maxTree closeness.Tree) error {
	vals, err := checkInput(g, labels)
	if err != nil {
		return err
	}
	if n := g.VertexCount(); n > 0 && maxLabel(vals) > maxExact/int64(n) {
		return fmt.Errorf("Trees: labels up to %d over %d vertices: %w", maxLabel(vals), n, ErrUnverifiable)
	}

	tw := closeness.TreeWeight(labels)
	check := func(objective string, got int64, sign float64) error {
		wg := toGonum(g, func(e core.Edge) float64 { return sign * float64(tw(e)) })
		dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		want := sign * path.Prim(dst, wg)
		if float64(got) != want {
			return fmt.Errorf("Trees: %s total %d, gonum %v: %w", objective, got, want, ErrMismatch)
		}

		return nil
	}
	if err := check("min", minTree.Total, 1); err != nil {
		return err
	}

	return check("max", maxTree.Total, -1)
}

func checkInput(g *core.Graph, labels *closeness.Labels) ([]int64, error) {
	if g == nil || labels == nil {
		return nil, fmt.Errorf("nil graph or labels: %w", ErrInput)
	}
	if labels.Len() != g.VertexCount() {
		return nil, fmt.Errorf("%d labels for %d vertices: %w", labels.Len(), g.VertexCount(), ErrInput)
	}

	return labels.Values()
}

// toGonum copies g into a gonum weighted graph. Self-loops are dropped and
// parallel edges collapse to their lightest weight under w.
func toGonum(g *core.Graph, w func(core.Edge) float64) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < g.VertexCount(); v++ {
		out.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		weight := w(e)
		if prev, ok := out.Weight(int64(e.From), int64(e.To)); ok && prev <= weight {
			continue
		}
		out.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.From),
			T: simple.Node(e.To),
			W: weight,
		})
	}

	return out
}

func maxLabel(vals []int64) int64 {
	var m int64
	for _, v := range vals {
		if v > m {
			m = v
		}
	}

	return m
}
