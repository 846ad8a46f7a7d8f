package solgraph

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/ikreport/pkg/kin"
	"github.com/matzehuels/ikreport/pkg/kin/kintest"
)

func TestFromEdges(t *testing.T) {
	edges := kintest.TwoLink().Robot.NotationGraph
	g, err := FromEdges(edges)
	if err != nil {
		t.Fatalf("FromEdges() error: %v", err)
	}

	if g.NodeCount() != 4 {
		t.Errorf("NodeCount() = %d, want 4", g.NodeCount())
	}
	if g.EdgeCount() != len(edges) {
		t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), len(edges))
	}
	if !slices.Equal(g.Edges(), edges) {
		t.Errorf("Edges() = %v, want input order %v", g.Edges(), edges)
	}

	wantRoots := []string{"th_1s1", "th_1s2"}
	if got := g.Roots(); !slices.Equal(got, wantRoots) {
		t.Errorf("Roots() = %v, want %v", got, wantRoots)
	}
	if got := g.Parents("th_2s2"); !slices.Equal(got, []string{"th_1s2", "th_1s1"}) {
		t.Errorf("Parents(th_2s2) = %v", got)
	}
	if got := g.Children("th_1s1"); !slices.Equal(got, []string{"th_2s1", "th_2s2"}) {
		t.Errorf("Children(th_1s1) = %v", got)
	}
	if got := g.Sinks(); !slices.Equal(got, []string{"th_2s1", "th_2s2"}) {
		t.Errorf("Sinks() = %v", got)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestFromEdgesInvalid(t *testing.T) {
	_, err := FromEdges([]kin.Edge{{Parent: "a", Child: ""}})
	if !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("FromEdges(empty child) = %v, want ErrInvalidNodeID", err)
	}
}

func TestAddEdgeUnknown(t *testing.T) {
	g := New()
	g.AddNode("a")
	if err := g.AddEdge("a", "b"); !errors.Is(err, ErrUnknownChild) {
		t.Errorf("AddEdge(unknown child) = %v", err)
	}
	g.AddNode("b")
	if err := g.AddEdge("x", "b"); !errors.Is(err, ErrUnknownParent) {
		t.Errorf("AddEdge(unknown parent) = %v", err)
	}
	if err := g.AddNode(""); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(\"\") = %v", err)
	}
}

func TestValidateCycle(t *testing.T) {
	g, err := FromEdges([]kin.Edge{
		{Parent: "a", Child: "b"},
		{Parent: "b", Child: "c"},
		{Parent: "c", Child: "a"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("Validate() = %v, want ErrGraphHasCycle", err)
	}
}

func TestLevels(t *testing.T) {
	g, err := FromEdges([]kin.Edge{
		{Parent: kin.RootParent, Child: "a"},
		{Parent: "a", Child: "b"},
		{Parent: "b", Child: "c"},
		{Parent: "a", Child: "c"},
		{Parent: kin.RootParent, Child: "d"},
	})
	if err != nil {
		t.Fatal(err)
	}
	levels := g.Levels()
	want := map[string]int{"a": 0, "b": 1, "c": 2, "d": 0}
	for id, l := range want {
		if levels[id] != l {
			t.Errorf("Levels()[%s] = %d, want %d", id, levels[id], l)
		}
	}
}
