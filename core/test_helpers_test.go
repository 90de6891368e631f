// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/causal/core"
)

// Common node names used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"

	VertexX = "X"
	VertexY = "Y"
	VertexZ = "Z"
)

// Common concurrency sizes (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// mustGraph builds a graph with the given nodes and edges written in edge
// notation ("A --> B").
func mustGraph(t testing.TB, nodes []string, edges ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n))
	}
	for _, text := range edges {
		e, err := core.ParseEdge(text)
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(e))
	}

	return g
}

// chainABCD is A → B → C → D.
func chainABCD(t testing.TB) *core.Graph {
	return mustGraph(t, []string{VertexA, VertexB, VertexC, VertexD},
		"A --> B", "B --> C", "C --> D")
}
