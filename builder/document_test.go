package builder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/causal/builder"
	"github.com/katalvlaran/causal/core"
)

const smokingDoc = `
name: smoking
nodes:
  - name: Smoking
  - name: Tar
  - name: Cancer
  - name: Genotype
    kind: latent
edges:
  - Smoking --> Tar
  - Tar --> Cancer
  - Genotype --> Smoking
  - Genotype --> Cancer
`

func TestParseGraphDocument_Build(t *testing.T) {
	doc, err := builder.ParseGraphDocument([]byte(smokingDoc))
	require.NoError(t, err)
	assert.Equal(t, "smoking", doc.Name)

	g, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"Smoking", "Tar", "Cancer", "Genotype"}, g.NodeNames())
	assert.Equal(t, 4, g.NumEdges())
	n, err := g.Node("Genotype")
	require.NoError(t, err)
	assert.Equal(t, core.Latent, n.Kind)
	assert.True(t, g.IsParentOf("Tar", "Cancer"))
}

func TestGraphDocument_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Edges("A o-> B", "B <-> C", "C --- D"))
	require.NoError(t, err)
	require.NoError(t, g.AddNode("L", core.WithKind(core.Latent)))

	data, err := builder.DocumentOf("pag", g).Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "pag.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	doc, err := builder.LoadGraphDocument(path)
	require.NoError(t, err)
	back, err := doc.Build()
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
	n, err := back.Node("L")
	require.NoError(t, err)
	assert.Equal(t, core.Latent, n.Kind)
}

func TestParseGraphDocument_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":         ``,
		"no nodes":      "name: x\n",
		"unknown field": "nodes:\n  - name: A\ncolour: red\n",
		"unnamed node":  "nodes:\n  - kind: latent\n",
		"duplicate":     "nodes:\n  - name: A\n  - name: A\n",
		"bad kind":      "nodes:\n  - name: A\n    kind: ordinal\n",
		"bad edge":      "nodes:\n  - name: A\n  - name: B\nedges:\n  - A ==> B\n",
		"unknown node":  "nodes:\n  - name: A\nedges:\n  - A --> B\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.ParseGraphDocument([]byte(text))
			assert.ErrorIs(t, err, builder.ErrBadDocument)
		})
	}

	_, err := builder.LoadGraphDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGraphDocument_BuildRejectsSelfLoop(t *testing.T) {
	doc := &builder.GraphDocument{
		Nodes: []builder.NodeDoc{{Name: "A"}},
		Edges: []string{"A --> A"},
	}
	_, err := doc.Build()
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestGraphDocument_ToMermaid(t *testing.T) {
	doc := &builder.GraphDocument{
		Nodes: []builder.NodeDoc{{Name: "A"}, {Name: "B"}, {Name: "C"}},
		Edges: []string{"A --> B", "B <-> C", "A o-o C", "A --- C"},
	}
	want := "graph TD\n" +
		"    A[A]\n    B[B]\n    C[C]\n" +
		"    A --> B\n    B <--> C\n    A o--o C\n    A --- C\n"
	assert.Equal(t, want, doc.ToMermaid())
}
