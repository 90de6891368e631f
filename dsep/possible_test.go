package dsep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/causal/core"
	"github.com/katalvlaran/causal/dsep"
)

func possibly(t *testing.T, g *core.Graph, x, y string, cond ...string) bool {
	t.Helper()
	ok, err := dsep.PossiblyDConnected(g, x, y, cond)
	require.NoError(t, err)

	return ok
}

// TestPossiblyDConnected_AgreesOnDAGs: with every mark fixed, possible
// d-connection reduces to d-connection on the chain and collider fixtures.
func TestPossiblyDConnected_AgreesOnDAGs(t *testing.T) {
	fixtures := map[string]*core.Graph{
		"chain":    graphOf(t, []string{"A", "B", "C"}, "A --> B", "B --> C"),
		"collider": graphOf(t, []string{"A", "B", "C"}, "A --> B", "C --> B"),
		"fork":     graphOf(t, []string{"A", "B", "C"}, "B --> A", "B --> C"),
	}
	for name, g := range fixtures {
		for _, cond := range [][]string{nil, {"B"}} {
			assert.Equal(t, connected(t, g, "A", "C", cond...), possibly(t, g, "A", "C", cond...),
				"%s cond=%v", name, cond)
		}
	}
}

func TestPossiblyDConnected_Circles(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, "A o-o B", "B o-o C")
	assert.True(t, possibly(t, g, "A", "C"))
	assert.False(t, possibly(t, g, "A", "C", "B"))

	// Shielded: B is no longer a definite non-collider.
	shielded := graphOf(t, []string{"A", "B", "C", "D"}, "A o-o B", "B o-o D", "A o-o D", "D o-o C")
	assert.True(t, possibly(t, shielded, "A", "C"))
	assert.False(t, possibly(t, shielded, "B", "C", "D"))
}

func TestPossiblyDConnected_Collider(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C", "D"}, "A o-> B", "C o-> B", "B --> D")

	assert.False(t, possibly(t, g, "A", "C"))
	// A collider in the conditioning set is legal.
	assert.True(t, possibly(t, g, "A", "C", "B"))
	// So is one that is a possible ancestor of a conditioned node.
	assert.True(t, possibly(t, g, "A", "C", "D"))
	assert.True(t, possibly(t, g, "A", "A"))
	assert.True(t, possibly(t, g, "A", "B"))
}
