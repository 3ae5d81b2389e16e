package closeness

import (
	"fmt"

	"github.com/katalvlaran/closetree/core"
)

// noPredecessor marks the root and unsettled vertices in Labels.pred.
const noPredecessor = -1

// Labels is the explicit vertex → optional closeness mapping.
//
// The root is pre-seeded with closeness 0. Every other vertex is absent until
// Settle is called for it, and reading an absent vertex is an error rather
// than an implicit zero.
type Labels struct {
	root    int
	value   []int64
	settled []bool
	pred    []int
	order   []int // settle order, root first
}

// NewLabels returns labels for n vertices with only root settled.
// Errors: core.ErrVertexNotFound if root is outside [0, n).
func NewLabels(n, root int) (*Labels, error) {
	if root < 0 || root >= n {
		return nil, fmt.Errorf("closeness: root %d of %d vertices: %w", root, n, core.ErrVertexNotFound)
	}
	l := &Labels{
		root:    root,
		value:   make([]int64, n),
		settled: make([]bool, n),
		pred:    make([]int, n),
		order:   make([]int, 0, n),
	}
	for i := range l.pred {
		l.pred[i] = noPredecessor
	}
	l.settled[root] = true
	l.order = append(l.order, root)

	return l, nil
}

// Settle records closeness cost for v, reached from the settled vertex from.
func (l *Labels) Settle(v, from int, cost int64) error {
	if !l.has(v) {
		return fmt.Errorf("Settle(%d): %w", v, core.ErrVertexNotFound)
	}
	if l.settled[v] {
		return fmt.Errorf("Settle(%d): %w", v, ErrAlreadySettled)
	}
	if !l.has(from) || !l.settled[from] {
		return fmt.Errorf("Settle(%d) from %d: %w", v, from, ErrUnsettled)
	}
	l.value[v] = cost
	l.settled[v] = true
	l.pred[v] = from
	l.order = append(l.order, v)

	return nil
}

// At returns the closeness of v.
// Errors: core.ErrVertexNotFound, ErrUnsettled.
func (l *Labels) At(v int) (int64, error) {
	if !l.has(v) {
		return 0, fmt.Errorf("At(%d): %w", v, core.ErrVertexNotFound)
	}
	if !l.settled[v] {
		return 0, fmt.Errorf("At(%d): %w", v, ErrUnsettled)
	}

	return l.value[v], nil
}

// Predecessor returns the vertex v was settled from.
// ok is false for the root and for unsettled vertices.
func (l *Labels) Predecessor(v int) (from int, ok bool) {
	if !l.has(v) || l.pred[v] == noPredecessor {
		return noPredecessor, false
	}

	return l.pred[v], true
}

// Root returns the root vertex.
func (l *Labels) Root() int { return l.root }

// Len returns the number of vertices covered, settled or not.
func (l *Labels) Len() int { return len(l.value) }

// SettledCount returns how many vertices are settled, root included.
func (l *Labels) SettledCount() int { return len(l.order) }

// Settled reports whether v is settled.
func (l *Labels) Settled(v int) bool { return l.has(v) && l.settled[v] }

// Complete reports whether every vertex is settled.
func (l *Labels) Complete() bool { return len(l.order) == len(l.value) }

// Order returns the vertices in the order they were settled.
func (l *Labels) Order() []int {
	out := make([]int, len(l.order))
	copy(out, l.order)

	return out
}

// Values returns a copy of all closeness values indexed by vertex.
// Errors: ErrUnsettled unless Complete.
func (l *Labels) Values() ([]int64, error) {
	if !l.Complete() {
		return nil, fmt.Errorf("Values: %d of %d settled: %w", len(l.order), len(l.value), ErrUnsettled)
	}
	out := make([]int64, len(l.value))
	copy(out, l.value)

	return out, nil
}

func (l *Labels) has(v int) bool { return v >= 0 && v < len(l.value) }
