// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/causal/core"
)

// BenchmarkAddNode measures amortized node insertion, including matrix growth.
func BenchmarkAddNode(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddNode(fmt.Sprintf("N%d", i))
	}
}

// BenchmarkParents measures a parent scan in a 500-node star pointing at Hub.
func BenchmarkParents(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(501))
	_ = g.AddNode("Hub")
	for i := 0; i < 500; i++ {
		name := fmt.Sprintf("N%d", i)
		_ = g.AddNode(name)
		_ = g.AddDirectedEdge(name, "Hub")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Parents("Hub")
	}
}

// BenchmarkRemoveNode measures matrix compaction on a 200-node chain.
func BenchmarkRemoveNode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewGraph()
		for k := 0; k < 200; k++ {
			_ = g.AddNode(fmt.Sprintf("N%d", k))
			if k > 0 {
				_ = g.AddDirectedEdge(fmt.Sprintf("N%d", k-1), fmt.Sprintf("N%d", k))
			}
		}
		b.StartTimer()
		_ = g.RemoveNode("N0")
	}
}
