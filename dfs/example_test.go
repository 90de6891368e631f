package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/causal/core"
	"github.com/katalvlaran/causal/dfs"
)

// ExampleTopologicalSort orders a small DAG whose nodes were inserted
// child-first.
func ExampleTopologicalSort() {
	g := core.NewGraph()
	for _, n := range []string{"Outcome", "Treatment", "Confounder"} {
		_ = g.AddNode(n)
	}
	_ = g.AddDirectedEdge("Confounder", "Treatment")
	_ = g.AddDirectedEdge("Confounder", "Outcome")
	_ = g.AddDirectedEdge("Treatment", "Outcome")

	order, err := dfs.TopologicalSort(g)
	fmt.Println(order, err)

	// Output:
	// [Confounder Treatment Outcome] <nil>
}
