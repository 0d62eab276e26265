package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// document is the wire format: plain node and edge arrays, the same
// shape the rendering layer feeds to vis-network.
type document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Marshal serializes the graph to indented JSON bytes.
// Nodes and edges keep their insertion order for deterministic output.
func Marshal(g *Graph) ([]byte, error) {
	doc := document{Nodes: make([]Node, 0, g.NodeCount()), Edges: g.Edges()}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, *n)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal deserializes JSON bytes back into a graph.
// Returns an error if the structure references unknown nodes.
func Unmarshal(data []byte) (*Graph, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	g := New()
	for _, n := range doc.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("add node %s: %w", n.ID, err)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// Write writes the graph as JSON to an io.Writer.
func Write(g *Graph, w io.Writer) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteFile writes the graph to a JSON file with 0644 permissions.
func WriteFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// ReadFile reads a JSON file and returns the decoded graph.
func ReadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
