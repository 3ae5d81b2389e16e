package closeness

import (
	"fmt"
	"math"

	"github.com/katalvlaran/closetree/core"
	"github.com/katalvlaran/closetree/frontier"
)

// Label computes the closeness of every vertex of g from root.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. root must lie in [0, n) (core.ErrVertexNotFound).
//
// Failure modes:
//   - ErrUngrounded if some vertex cannot be reached from root.
//   - ErrWeightOverflow if a path cost exceeds math.MaxInt64.
//
// Label only reads g; running it twice yields identical labels.
//
// Complexity: O(E log E) time, O(V + E) space.
func Label(g *core.Graph, root int, opts ...Option) (*Labels, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	labels, err := NewLabels(g.VertexCount(), root)
	if err != nil {
		return nil, err
	}

	r := &runner{
		g:      g,
		opts:   newOptions(opts),
		labels: labels,
		pq:     frontier.New(g.VertexCount()),
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	r.opts.Logger.Debug().Int("root", root).Int("vertices", labels.Len()).Msg("closeness labels computed")

	return labels, nil
}

// runner holds the mutable state of one labeling pass.
type runner struct {
	g      *core.Graph
	opts   Options
	labels *Labels
	pq     *frontier.Queue
}

// process seeds the frontier from the root and settles one vertex per
// non-stale extraction until every vertex is settled.
func (r *runner) process() error {
	if err := r.expand(r.labels.root); err != nil {
		return err
	}

	for !r.labels.Complete() {
		item, ok := r.pq.Pop()
		if !ok {
			return fmt.Errorf("Label: settled %d of %d vertices: %w",
				r.labels.SettledCount(), r.labels.Len(), ErrUngrounded)
		}
		if r.labels.Settled(item.To) {
			continue
		}
		if err := r.labels.Settle(item.To, item.From, item.Cost); err != nil {
			return err
		}
		r.opts.Logger.Trace().
			Int("vertex", item.To).
			Int("from", item.From).
			Int64("closeness", item.Cost).
			Msg("settled")
		if r.opts.OnSettle != nil {
			r.opts.OnSettle(item.To, item.From, item.Cost)
		}
		if err := r.expand(item.To); err != nil {
			return err
		}
	}

	return nil
}

// expand pushes w(v,s) + closeness[v] for every unsettled neighbour s of v.
func (r *runner) expand(v int) error {
	base, err := r.labels.At(v)
	if err != nil {
		return err
	}
	nbrs, err := r.g.Neighbors(v)
	if err != nil {
		return err
	}
	for _, e := range nbrs {
		if r.labels.Settled(e.To) {
			continue
		}
		if e.Weight > math.MaxInt64-base {
			return fmt.Errorf("Label: edge %d→%d weight=%d from closeness %d: %w",
				e.From, e.To, e.Weight, base, ErrWeightOverflow)
		}
		r.pq.Push(frontier.Entry{Cost: e.Weight + base, From: v, To: e.To})
	}

	return nil
}
