package kcore_test

import (
	"fmt"

	"github.com/katalvlaran/ctgcn/builder"
	"github.com/katalvlaran/ctgcn/core"
	"github.com/katalvlaran/ctgcn/kcore"
)

// ExampleHierarchy decomposes a 4-clique with a pendant tail into nested cores.
func ExampleHierarchy() {
	g, _ := core.NewGraph(6)
	_ = builder.Apply(g, nil, builder.Complete(4))
	_ = g.AddEdge(3, 4, 1)
	_ = g.AddEdge(4, 5, 1)

	d, _ := kcore.Hierarchy(g)
	fmt.Println("cores:", d.Cores)
	for k, level := range d.Levels {
		fmt.Printf("level %d: %d edges\n", k+1, level.EdgeCount())
	}
	// Output:
	// cores: [3 3 3 3 1 1]
	// level 1: 8 edges
	// level 2: 6 edges
	// level 3: 6 edges
}
