// SPDX-License-Identifier: MIT
// Package: causal/builder
//
// document.go - YAML graph documents.
//
//	name: smoking
//	nodes:
//	  - name: Smoking
//	  - name: Tar
//	  - name: Genotype
//	    kind: latent
//	edges:
//	  - Smoking --> Tar
//	  - Genotype --> Smoking

package builder

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/causal/core"
)

// GraphDocument is the on-disk form of a graph: nodes in insertion order and
// edges in edge notation.
type GraphDocument struct {
	Name  string    `yaml:"name,omitempty"`
	Nodes []NodeDoc `yaml:"nodes"`
	Edges []string  `yaml:"edges,omitempty"`
}

// NodeDoc is one node of a GraphDocument. An empty Kind means continuous.
type NodeDoc struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind,omitempty"`
}

// LoadGraphDocument reads and validates a YAML graph document.
func LoadGraphDocument(path string) (*GraphDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("builder: read graph document: %w", err)
	}

	return ParseGraphDocument(data)
}

// ParseGraphDocument decodes and validates a YAML graph document. Unknown
// fields are rejected.
func ParseGraphDocument(data []byte) (*GraphDocument, error) {
	var doc GraphDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks node names and kinds, and that every edge parses and
// joins two declared nodes.
func (d *GraphDocument) Validate() error {
	if len(d.Nodes) == 0 {
		return fmt.Errorf("%w: no nodes", ErrBadDocument)
	}
	names := make(map[string]bool, len(d.Nodes))
	for i, n := range d.Nodes {
		if n.Name == "" {
			return fmt.Errorf("%w: node %d has no name", ErrBadDocument, i)
		}
		if names[n.Name] {
			return fmt.Errorf("%w: duplicate node %q", ErrBadDocument, n.Name)
		}
		if _, err := core.ParseVariableKind(n.Kind); err != nil {
			return fmt.Errorf("%w: node %q: %v", ErrBadDocument, n.Name, err)
		}
		names[n.Name] = true
	}
	for _, text := range d.Edges {
		e, err := core.ParseEdge(text)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadDocument, err)
		}
		for _, end := range []string{e.Node1, e.Node2} {
			if !names[end] {
				return fmt.Errorf("%w: edge %q references unknown node %q", ErrBadDocument, text, end)
			}
		}
	}

	return nil
}

// Build validates d and constructs the graph it describes.
func (d *GraphDocument) Build(gopts ...core.GraphOption) (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return BuildGraph(gopts, nil, d.nodes(), Edges(d.Edges...))
}

// nodes adds the declared nodes in document order with their kinds.
func (d *GraphDocument) nodes() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, n := range d.Nodes {
			kind, err := core.ParseVariableKind(n.Kind)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrBadDocument, err)
			}
			if err = g.AddNode(n.Name, core.WithKind(kind)); err != nil {
				return err
			}
		}

		return nil
	}
}

// DocumentOf captures g as a GraphDocument. Continuous nodes carry no kind.
func DocumentOf(name string, g *core.Graph) *GraphDocument {
	doc := &GraphDocument{Name: name}
	for _, n := range g.Nodes() {
		nd := NodeDoc{Name: n.Name}
		if n.Kind != core.Continuous {
			nd.Kind = n.Kind.String()
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, e.String())
	}

	return doc
}

// Marshal renders d as YAML.
func (d *GraphDocument) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// ToMermaid renders d as a Mermaid flowchart. Arrow marks become arrowheads;
// circle marks are drawn as circle ends.
func (d *GraphDocument) ToMermaid() string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	for _, n := range d.Nodes {
		fmt.Fprintf(&sb, "    %s[%s]\n", n.Name, n.Name)
	}
	for _, text := range d.Edges {
		e, err := core.ParseEdge(text)
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", e.Node1, mermaidLink(e), e.Node2)
	}

	return sb.String()
}

func mermaidLink(e core.Edge) string {
	left := map[core.Endpoint]string{core.Tail: "", core.Arrow: "<", core.Circle: "o"}[e.Endpoint1]
	right := map[core.Endpoint]string{core.Tail: "", core.Arrow: ">", core.Circle: "o"}[e.Endpoint2]
	if left == "" && right == "" {
		return "---"
	}

	return left + "--" + right
}
