// SPDX-License-Identifier: MIT
// Package: closetree/builder
//
// impl_complete.go - implementation of Complete() constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits each unordered pair {i,j}, i<j, in lexicographic order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/closetree/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w := cfg.weightFn(cfg.rng)
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodComplete, i, j, w, err)
				}
			}
		}

		return nil
	}
}
