// SPDX-License-Identifier: MIT
// Package: closetree/builder
//
// impl_random_tree.go - implementation of RandomTree() constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n == 1 emits nothing.
//   - cfg.rng must be non-nil when n > 2 (else ErrNeedRandSource).
//   - For i = 1..n-1 attaches i to a uniformly chosen parent in [0, i).
//     The result is a spanning tree, so any graph containing it is connected.

package builder

import (
	"fmt"

	"github.com/katalvlaran/closetree/core"
)

const (
	methodRandomTree   = "RandomTree"
	minRandomTreeNodes = 1
)

// RandomTree returns a Constructor that adds a random recursive spanning tree.
func RandomTree() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minRandomTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minRandomTreeNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil && n > 2 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomTree, ErrNeedRandSource)
		}

		for i := 1; i < n; i++ {
			parent := 0
			if i > 1 {
				parent = cfg.rng.Intn(i)
			}
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(parent, i, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodRandomTree, parent, i, w, err)
			}
		}

		return nil
	}
}
