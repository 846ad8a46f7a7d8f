package solgraph

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/ikreport/pkg/kin"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the notation is empty.
	ErrInvalidNodeID = errors.New("notation must not be empty")

	// ErrUnknownParent is returned by [Graph.AddEdge] when the parent does not exist.
	ErrUnknownParent = errors.New("unknown parent notation")

	// ErrUnknownChild is returned by [Graph.AddEdge] when the child does not exist.
	ErrUnknownChild = errors.New("unknown child notation")

	// ErrGraphHasCycle is returned by [Graph.Validate] when a notation depends
	// on itself through a chain of edges.
	ErrGraphHasCycle = errors.New("solution graph contains a cycle")
)

// Graph is a directed graph of solution notations.
// The zero value is not usable; use New or FromEdges.
type Graph struct {
	nodes    []string
	index    map[string]bool
	roots    map[string]bool
	edges    []kin.Edge
	outgoing map[string][]string
	incoming map[string][]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		index:    make(map[string]bool),
		roots:    make(map[string]bool),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// FromEdges builds a graph from a solver edge list. Nodes are created in
// order of first appearance. Root edges are kept in Edges so the list
// round-trips unchanged.
func FromEdges(edges []kin.Edge) (*Graph, error) {
	g := New()
	for _, e := range edges {
		if e.Child == "" || e.Parent == "" {
			return nil, fmt.Errorf("edge %s: %w", e, ErrInvalidNodeID)
		}
		if !e.IsRoot() {
			g.AddNode(e.Parent)
		}
		g.AddNode(e.Child)
		if err := g.AddEdge(e.Parent, e.Child); err != nil {
			return nil, fmt.Errorf("edge %s: %w", e, err)
		}
	}
	return g, nil
}

// AddNode adds a notation. Adding an existing notation is a no-op.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if !g.index[id] {
		g.index[id] = true
		g.nodes = append(g.nodes, id)
	}
	return nil
}

// AddEdge adds the edge parent -> child. A parent of [kin.RootParent] marks
// child as a root instead of adding an adjacency.
func (g *Graph) AddEdge(parent, child string) error {
	if !g.index[child] {
		return ErrUnknownChild
	}
	if parent == kin.RootParent {
		g.roots[child] = true
		g.edges = append(g.edges, kin.Edge{Parent: parent, Child: child})
		return nil
	}
	if !g.index[parent] {
		return ErrUnknownParent
	}
	g.edges = append(g.edges, kin.Edge{Parent: parent, Child: child})
	g.outgoing[parent] = append(g.outgoing[parent], child)
	g.incoming[child] = append(g.incoming[child], parent)
	return nil
}

// Nodes returns the notations in insertion order.
func (g *Graph) Nodes() []string { return slices.Clone(g.nodes) }

// Edges returns a copy of the edges in insertion order, root edges included.
func (g *Graph) Edges() []kin.Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of notations.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, root edges included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Has reports whether the notation is in the graph.
func (g *Graph) Has(id string) bool { return g.index[id] }

// Children returns the notations solved from id. The slice is read-only.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the notations id was solved from. The slice is read-only.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// IsRoot reports whether id was marked as a root or has no parents.
func (g *Graph) IsRoot(id string) bool {
	return g.index[id] && (g.roots[id] || len(g.incoming[id]) == 0)
}

// Roots returns the roots in insertion order.
func (g *Graph) Roots() []string {
	var roots []string
	for _, id := range g.nodes {
		if g.IsRoot(id) {
			roots = append(roots, id)
		}
	}
	return roots
}

// Sinks returns notations nothing depends on, in insertion order.
func (g *Graph) Sinks() []string {
	var sinks []string
	for _, id := range g.nodes {
		if len(g.outgoing[id]) == 0 {
			sinks = append(sinks, id)
		}
	}
	return sinks
}

// Validate returns ErrGraphHasCycle if the graph is not acyclic.
func (g *Graph) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range g.outgoing[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
			}
			if hasCycle {
				return
			}
		}
		color[id] = black
	}

	for _, id := range g.nodes {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// Levels assigns every notation its longest distance from a root, so a
// notation always sits below everything it depends on. The graph must be
// acyclic.
func (g *Graph) Levels() map[string]int {
	levels := make(map[string]int, len(g.nodes))
	indeg := make(map[string]int, len(g.nodes))
	for _, id := range g.nodes {
		indeg[id] = len(g.incoming[id])
	}

	queue := make([]string, 0, len(g.nodes))
	for _, id := range g.nodes {
		if indeg[id] == 0 {
			queue = append(queue, id)
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, c := range g.outgoing[id] {
			levels[c] = max(levels[c], levels[id]+1)
			indeg[c]--
			if indeg[c] == 0 {
				queue = append(queue, c)
			}
		}
	}
	return levels
}
