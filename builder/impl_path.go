// SPDX-License-Identifier: MIT
// Package: closetree/builder
//
// impl_path.go - implementation of Path() constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges i—i+1 for i = 0..n-2 in ascending order.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/closetree/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that chains every vertex: 0—1—…—(n-1).
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i+1 < n; i++ {
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(i, i+1, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodPath, i, i+1, w, err)
			}
		}

		return nil
	}
}
