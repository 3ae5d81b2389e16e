// SPDX-License-Identifier: MIT

package subtree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/closetree/core"
	"github.com/katalvlaran/closetree/dsu"
	"github.com/rs/zerolog"
)

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("subtree: graph is nil")

	// ErrBadEdgeCount indicates k < 0.
	ErrBadEdgeCount = errors.New("subtree: edge count must be non-negative")

	// ErrTooFewVertices indicates that k edges need more vertices than the graph has.
	ErrTooFewVertices = errors.New("subtree: not enough vertices for k edges")
)

// unitWeight is the weight of an edge that joins vertices into one component.
const unitWeight = 1

// Option configures Cheapest.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger that receives the component breakdown at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Components groups the vertices of g joined by unit-weight edges.
// Groups are ordered by their smallest member; members are ascending.
func Components(g *core.Graph) ([][]int, error) {
	d, err := unitForest(g)
	if err != nil {
		return nil, err
	}

	return d.Groups(), nil
}

// Cheapest returns the minimum total weight of a connected subgraph of g
// with exactly k edges.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrBadEdgeCount if k < 0.
//   - ErrTooFewVertices if k+1 > |V|.
//
// Complexity: O(E·α(V) + V log V).
func Cheapest(g *core.Graph, k int, opts ...Option) (int64, error) {
	cfg := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return 0, ErrNilGraph
	}
	if k < 0 {
		return 0, fmt.Errorf("Cheapest: k=%d: %w", k, ErrBadEdgeCount)
	}
	need := k + 1
	if need > g.VertexCount() {
		return 0, fmt.Errorf("Cheapest: k=%d needs %d vertices, have %d: %w",
			k, need, g.VertexCount(), ErrTooFewVertices)
	}

	d, err := unitForest(g)
	if err != nil {
		return 0, err
	}
	sizes := d.Sizes()

	weight := int64(k)
	covered := sizes[0]
	used := 1
	for covered < need {
		// One heavier edge replaces a unit edge to reach the next component.
		weight++
		covered += sizes[used]
		used++
	}

	cfg.logger.Debug().
		Int("k", k).
		Int("components", len(sizes)).
		Int("joined", used).
		Int64("weight", weight).
		Msg("cheapest subtree")

	return weight, nil
}

// unitForest unions the endpoints of every unit-weight edge of g.
func unitForest(g *core.Graph) (*dsu.DSU, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	d := dsu.New(g.VertexCount())
	for _, e := range g.Edges() {
		if e.Weight == unitWeight {
			d.Union(e.From, e.To)
		}
	}

	return d, nil
}
