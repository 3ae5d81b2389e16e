// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted distances and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/closetree/core"
)

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
func BFS(g *core.Graph, start int) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	res := &BFSResult{
		Order: make([]int, 0, n),
		Depth: make([]int, n),
	}
	for v := range res.Depth {
		res.Depth[v] = Unreached
	}

	// Order doubles as the FIFO queue: everything past head is still pending.
	res.Depth[start] = 0
	res.Order = append(res.Order, start)
	for head := 0; head < len(res.Order); head++ {
		u := res.Order[head]
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range neighbors {
			// first time seen?
			if res.Depth[e.To] == Unreached {
				res.Depth[e.To] = res.Depth[u] + 1
				res.Order = append(res.Order, e.To)
			}
		}
	}

	return res, nil
}
