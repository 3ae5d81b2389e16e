// Package prim_kruskal defines configuration options and sentinel errors for spanning-tree computation.
// It supports selecting between Kruskal and Prim algorithms, and between minimizing and
// maximizing the total weight, via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/closetree/core"
	"github.com/rs/zerolog"
)

// ErrInvalidGraph indicates that the graph or the weight function is nil.
var ErrInvalidGraph = errors.New("prim_kruskal: spanning tree requires a graph and a weight function")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It also applies to the empty graph.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates MSTOptions.Method or MSTOptions.Objective holds an unsupported value.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method or objective")

// ErrWeightOverflow indicates the tree total does not fit in an int64.
var ErrWeightOverflow = errors.New("prim_kruskal: tree total overflows int64")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Objective selects whether the tree weight is minimized or maximized.
type Objective string

const (
	// ObjectiveMin builds a minimum-weight spanning tree.
	ObjectiveMin Objective = "min"

	// ObjectiveMax builds a maximum-weight spanning tree by negating weights.
	ObjectiveMax Objective = "max"
)

// WeightFunc assigns the weight used for tree construction to an edge.
// For Prim, e.From is the endpoint already in the tree.
// The function must be symmetric: w(e) == w(e.Reverse()).
type WeightFunc func(e core.Edge) int64

// EdgeWeight uses the stored edge weight.
func EdgeWeight(e core.Edge) int64 { return e.Weight }

// MSTOptions configures which algorithm to run, its objective, the weight
// function and, for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Prim from vertex 0, minimizing edge weights).
//
// Complexity: O(E log E) for Prim with lazy deletion, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// Objective is ObjectiveMin or ObjectiveMax.
	Objective Objective

	// Weight computes each edge's weight; nil is rejected with ErrInvalidGraph.
	Weight WeightFunc

	// Logger receives a trace event per accepted tree edge.
	Logger zerolog.Logger
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method (MethodPrim or MethodKruskal).
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithObjective sets whether the tree weight is minimized or maximized.
func WithObjective(o Objective) Option {
	return func(opts *MSTOptions) {
		opts.Objective = o
	}
}

// WithWeight sets the edge weight function.
func WithWeight(w WeightFunc) Option {
	return func(opts *MSTOptions) {
		opts.Weight = w
	}
}

// WithLogger sets the logger used for per-edge trace events.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *MSTOptions) {
		opts.Logger = l
	}
}

// DefaultOptions returns MSTOptions initialized with:
//
//	– Method    = MethodPrim
//	– Root      = 0
//	– Objective = ObjectiveMin
//	– Weight    = EdgeWeight
//	– Logger    = zerolog.Nop()
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:    MethodPrim,
		Root:      0,
		Objective: ObjectiveMin,
		Weight:    EdgeWeight,
		Logger:    zerolog.Nop(),
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Compute selects and runs the spanning-tree algorithm based on opts.Method and opts.Objective.
//
// Returns:
//
//	[]core.Edge — tree edges, each Weight replaced by opts.Weight(e) (empty for a single vertex).
//	int64       — total weight of the tree.
//	error       — ErrInvalidGraph, ErrDisconnected, core.ErrVertexNotFound, ErrWeightOverflow or ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	var sign int64
	switch opts.Objective {
	case ObjectiveMin:
		sign = 1
	case ObjectiveMax:
		sign = -1
	default:
		return nil, 0, ErrUnknownMethod
	}

	switch opts.Method {
	case MethodPrim:
		return prim(graph, opts.Root, opts.Weight, sign, opts.Logger)
	case MethodKruskal:
		return kruskal(graph, opts.Weight, sign, opts.Logger)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// signed wraps weight so that a minimizing algorithm optimizes sign·weight.
func signed(weight WeightFunc, sign int64) WeightFunc {
	if sign >= 0 {
		return weight
	}

	return func(e core.Edge) int64 { return -weight(e) }
}

// unsign restores the caller-facing weights after a negated run.
func unsign(mst []core.Edge, total int64, sign int64) ([]core.Edge, int64) {
	if sign >= 0 {
		return mst, total
	}
	for i := range mst {
		mst[i].Weight = -mst[i].Weight
	}

	return mst, -total
}

// addCost returns total + cost, or ErrWeightOverflow when the sum leaves
// [-MaxInt64, MaxInt64]. cost is negative on a negated (max) run, and the
// lower bound keeps the final negation in unsign representable.
func addCost(total, cost int64) (int64, error) {
	if (cost > 0 && total > math.MaxInt64-cost) || (cost < 0 && total < -math.MaxInt64-cost) {
		return 0, fmt.Errorf("total %d + %d: %w", total, cost, ErrWeightOverflow)
	}

	return total + cost, nil
}
