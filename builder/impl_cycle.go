// SPDX-License-Identifier: MIT
// Package: closetree/builder
//
// impl_cycle.go - implementation of Cycle() constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i—i+1 for i = 0..n-2, then the closing edge (n-1)—0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/closetree/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n over all vertices.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			u, v := i, (i+1)%n
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
