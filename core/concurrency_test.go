// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/causal/core"
)

// TestConcurrentAddNodeAndEdge adds NConcurrentAdds leaves to a hub from
// separate goroutines; every leaf must end up as a parent of Hub.
func TestConcurrentAddNodeAndEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Hub"))

	var wg sync.WaitGroup
	errs := make([]error, NConcurrentAdds)
	wg.Add(NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			name := fmt.Sprintf("V%d", id)
			if errs[id] = g.AddNode(name); errs[id] == nil {
				errs[id] = g.AddDirectedEdge(name, "Hub")
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	parents, err := g.Parents("Hub")
	require.NoError(t, err)
	assert.Len(t, parents, NConcurrentAdds)
	assert.Equal(t, NConcurrentAdds, g.NumEdges())
}

// TestConcurrentReadersAndTriples mixes path queries, triple reads (which
// purge under the write lock) and edge removals without races.
func TestConcurrentReadersAndTriples(t *testing.T) {
	g := chainABCD(t)
	require.NoError(t, g.AddUnderlineTriple(VertexA, VertexB, VertexC))

	var wg sync.WaitGroup
	wg.Add(2 * NReaders)
	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			_ = g.ExistsDirectedPathFromTo(VertexA, VertexD)
			_, _ = g.Ancestors(VertexD)
			_ = g.UnderlineTriples()
			_ = g.Clone()
		}()
		go func(id int) {
			defer wg.Done()
			if id == NReaders/2 {
				_ = g.RemoveEdge(VertexC, VertexD)
			}
			_ = g.IsUnderlineTriple(VertexA, VertexB, VertexC)
		}(i)
	}
	wg.Wait()

	assert.False(t, g.IsAdjacentTo(VertexC, VertexD))
	assert.True(t, g.IsUnderlineTriple(VertexA, VertexB, VertexC))
}
