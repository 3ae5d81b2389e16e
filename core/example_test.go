package core_test

import (
	"fmt"

	"github.com/katalvlaran/closetree/core"
)

// ExampleNewGraph builds the 3-vertex triangle used throughout the docs and
// prints the adjacency of vertex 1.
func ExampleNewGraph() {
	g, err := core.NewGraph(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(0, 2, 5)

	nbrs, _ := g.Neighbors(1)
	for _, e := range nbrs {
		fmt.Printf("%d-%d(%d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// 1-0(1)
	// 1-2(1)
}
