package dsep_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/causal/core"
	"github.com/katalvlaran/causal/dsep"
)

// graphOf builds a graph from node names and edges in edge notation.
func graphOf(t *testing.T, nodes []string, edges ...string) *core.Graph {
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

func connected(t *testing.T, g *core.Graph, x, y string, z ...string) bool {
	t.Helper()
	ok, err := dsep.IsDConnected(g, x, y, z)
	require.NoError(t, err)

	return ok
}

func TestIsDConnected_Chain(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, "A --> B", "B --> C")

	assert.True(t, connected(t, g, "A", "C"))
	assert.False(t, connected(t, g, "A", "C", "B"))
	assert.True(t, connected(t, g, "A", "B", "C"))

	sep, err := dsep.IsDSeparated(g, "A", "C", []string{"B"})
	require.NoError(t, err)
	assert.True(t, sep)
}

func TestIsDConnected_Collider(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C", "D"}, "A --> C", "B --> C", "C --> D")

	assert.False(t, connected(t, g, "A", "B"))
	assert.True(t, connected(t, g, "A", "B", "C"))
	// Conditioning on a descendant of the collider opens it too.
	assert.True(t, connected(t, g, "A", "B", "D"))
	assert.False(t, connected(t, g, "A", "D", "C"))
}

func TestIsDConnected_Fork(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, "B --> A", "B --> C")

	assert.True(t, connected(t, g, "A", "C"))
	assert.False(t, connected(t, g, "A", "C", "B"))
}

func TestIsDConnected_Self(t *testing.T) {
	g := graphOf(t, []string{"A", "B"})
	assert.True(t, connected(t, g, "A", "A"))
	assert.False(t, connected(t, g, "A", "B"))
}

// TestIsDConnectedSets_AgreesWithPairs checks the set variant against the
// pairwise test for every pair of disjoint singleton/doubleton sets and a
// range of conditioning sets.
func TestIsDConnectedSets_AgreesWithPairs(t *testing.T) {
	nodes := []string{"A", "B", "C", "D", "E"}
	g := graphOf(t, nodes, "A --> B", "B --> C", "D --> C", "C --> E", "A --> D")

	sets := [][]string{{"A"}, {"B"}, {"E"}, {"A", "E"}, {"B", "D"}}
	conds := [][]string{nil, {"C"}, {"B", "D"}, {"E"}}
	for _, xs := range sets {
		for _, ys := range sets {
			for _, z := range conds {
				want := false
				for _, x := range xs {
					for _, y := range ys {
						if connected(t, g, x, y, z...) {
							want = true
						}
					}
				}
				got, err := dsep.IsDConnectedSets(g, xs, ys, z)
				require.NoError(t, err)
				assert.Equal(t, want, got, "xs=%v ys=%v z=%v", xs, ys, z)

				sep, err := dsep.IsDSeparatedSets(g, xs, ys, z)
				require.NoError(t, err)
				assert.Equal(t, !want, sep)
			}
		}
	}
}

func TestAncestorClosure(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C", "D"}, "A --> B", "B --> C", "D --> C")

	got, err := dsep.AncestorClosure(g, []string{"B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got)

	got, err = dsep.AncestorClosure(g, []string{"C"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, got)

	_, err = dsep.AncestorClosure(g, []string{"Q"})
	assert.ErrorIs(t, err, dsep.ErrNodeNotFound)
}

func TestOnVisit(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C", "D"}, "A --> B", "B --> C", "C --> D")

	var visits [][2]string
	ok, err := dsep.IsDConnected(g, "A", "D", nil, dsep.WithOnVisit(func(a, b string) {
		visits = append(visits, [2]string{a, b})
	}))
	require.NoError(t, err)
	assert.True(t, ok)
	if diff := cmp.Diff([][2]string{{"A", "B"}, {"B", "C"}}, visits); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, "A --> B", "B --> C")

	_, err := dsep.IsDConnected(nil, "A", "B", nil)
	assert.ErrorIs(t, err, dsep.ErrGraphNil)

	_, err = dsep.IsDConnected(g, "A", "Q", nil)
	assert.ErrorIs(t, err, dsep.ErrNodeNotFound)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = dsep.IsDConnected(g, "A", "C", []string{"Q"})
	assert.ErrorIs(t, err, dsep.ErrNodeNotFound)

	//nolint:staticcheck // a nil context is the invalid input under test
	_, err = dsep.IsDConnected(g, "A", "C", nil, dsep.WithContext(nil))
	assert.ErrorIs(t, err, dsep.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dsep.IsDConnected(g, "A", "C", nil, dsep.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = dsep.PossiblyDConnected(nil, "A", "B", nil)
	assert.ErrorIs(t, err, dsep.ErrGraphNil)
	_, err = dsep.PossiblyDConnected(g, "A", "C", []string{"Q"})
	assert.ErrorIs(t, err, dsep.ErrNodeNotFound)
}
