package graphio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ctgcn/core"
	"github.com/katalvlaran/ctgcn/graphio"
)

func ExampleReadGraph() {
	idx, _ := core.NewNodeIndex([]string{"a", "b", "c", "d"})
	src := "from_id\tto_id\na\tb\nb\tc\n"

	g, _ := graphio.ReadGraph(strings.NewReader(src), idx)
	fmt.Println(g.NodeCount(), g.EdgeCount(), g.Stats().IsolatedCount)
	fmt.Println(graphio.LevelLabel(10, 7))
	// Output:
	// 4 2 1
	// 07
}
