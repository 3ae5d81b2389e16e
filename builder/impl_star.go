// SPDX-License-Identifier: MIT
// Package: closetree/builder
//
// impl_star.go - implementation of Star(center) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); center in [0, n) (else core.ErrVertexNotFound).
//   - Emits spokes center—leaf for every other vertex in ascending leaf order.
//   - Weight policy: cfg.weightFn(cfg.rng) per spoke.

package builder

import (
	"fmt"

	"github.com/katalvlaran/closetree/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub center and n-1 leaves.
func Star(center int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if !g.HasVertex(center) {
			return fmt.Errorf("%s: center=%d: %w", methodStar, center, core.ErrVertexNotFound)
		}

		for leaf := 0; leaf < n; leaf++ {
			if leaf == center {
				continue
			}
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(center, leaf, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodStar, center, leaf, w, err)
			}
		}

		return nil
	}
}
