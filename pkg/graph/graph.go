package graph

import (
	"errors"
	"fmt"

	"github.com/matzehuels/recviz/pkg/enumerate"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with
	// the same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From
	// node does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To
	// node does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge
	// references a node that doesn't exist. This indicates corruption.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")
)

// Node colors for the two-color rendering scheme.
const (
	ColorNormal    = "lightblue"
	ColorHighlight = "orange"
)

// Node is a vertex of the state graph. ID is the unique identity used
// for edge wiring; Label is the display label derived from the state
// signature - multiple nodes may share a Label but never an ID.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Edge is a directed labeled edge between two visited states. The label
// describes the transition taken ("Skip item 1", "+3", ...).
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// Graph is the aggregate of all visited nodes and transition edges for
// one enumeration run. It is built once, handed to a renderer, and
// discarded - there is no persistence and no mutation after rendering.
//
// Node and edge order is insertion order, which the builders below keep
// equal to visitation order so that output is deterministic.
// Graph is not safe for concurrent use.
type Graph struct {
	nodes    map[string]*Node
	order    []string
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a node to the graph. An empty Color defaults to
// [ColorNormal]. Returns ErrInvalidNodeID or ErrDuplicateNodeID on
// invalid input.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Color == "" {
		n.Color = ColorNormal
	}
	node := &n
	g.nodes[node.ID] = node
	g.order = append(g.order, node.ID)
	return nil
}

// AddEdge adds a directed labeled edge between two existing nodes.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint
// is missing.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// Node returns the node with the given ID and true, or nil and false.
// The pointer refers to the actual node, so color changes stick.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order. The returned slice
// contains pointers to the actual node structs.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Children returns the IDs this node has edges to, in insertion order.
// The returned slice is a read-only view.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the IDs with edges to this node, in insertion order.
// DFS-built trees have at most one parent per node; DP-built DAGs may
// have two (skip and pick derivations tying).
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// InDegree returns the number of incoming edges to the node.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Validate checks that every edge references existing nodes.
// Returns ErrInvalidEdgeEndpoint on the first dangling endpoint.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if _, ok := g.nodes[e.From]; !ok {
			return fmt.Errorf("%w: %s", ErrInvalidEdgeEndpoint, e.From)
		}
		if _, ok := g.nodes[e.To]; !ok {
			return fmt.Errorf("%w: %s", ErrInvalidEdgeEndpoint, e.To)
		}
	}
	return nil
}

// FromTrace builds a graph from a DFS enumeration result. Nodes are
// added in visitation order with suffix-stripped display labels; each
// non-root node gets its single incoming edge from the parent map. The
// result is always a tree.
func FromTrace(r enumerate.Result) (*Graph, error) {
	g := New()
	for _, id := range r.Trace {
		if err := g.AddNode(Node{ID: id, Label: enumerate.DisplayLabel(id)}); err != nil {
			return nil, fmt.Errorf("add node %s: %w", id, err)
		}
	}
	// Iterate the trace rather than the parent map so edge order is
	// deterministic across runs.
	for _, id := range r.Trace {
		in, ok := r.Parents[id]
		if !ok {
			continue
		}
		if err := g.AddEdge(Edge{From: in.Parent, To: id, Label: in.Label}); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", in.Parent, id, err)
		}
	}
	return g, nil
}

// FromTable builds the DP derivation DAG from a completed knapsack
// table. There is exactly one node per (i, w) cell, labeled with the
// cell value. For every cell in rows [0..n-1] a "skip item i" edge is
// added iff skipping preserves the next row's value, and a
// "pick item i" edge iff the item fits and picking produces it. Both
// edges may coexist when the derivations tie: the graph documents all
// optimal derivations, not just one.
func FromTable(t enumerate.Table) (*Graph, error) {
	g := New()
	n, W := t.Items(), t.Capacity()

	id := func(i, w int) string { return fmt.Sprintf("dp(%d,%d)", i, w) }

	for i := 0; i <= n; i++ {
		for w := 0; w <= W; w++ {
			node := Node{ID: id(i, w), Label: fmt.Sprintf("dp(%d,%d)=%d", i, w, t.Cells[i][w])}
			if err := g.AddNode(node); err != nil {
				return nil, fmt.Errorf("add node %s: %w", node.ID, err)
			}
		}
	}

	for i := 0; i < n; i++ {
		for w := 0; w <= W; w++ {
			if t.Cells[i+1][w] == t.Cells[i][w] {
				e := Edge{From: id(i, w), To: id(i+1, w), Label: fmt.Sprintf("skip item %d", i)}
				if err := g.AddEdge(e); err != nil {
					return nil, err
				}
			}
			if w >= t.Weights[i] && t.Cells[i+1][w] == t.Cells[i][w-t.Weights[i]]+t.Values[i] {
				e := Edge{From: id(i, w), To: id(i+1, w), Label: fmt.Sprintf("pick item %d", i)}
				if err := g.AddEdge(e); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
