package kin

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// MethodNone is the solve method of a variable that takes no part in the
// solution.
const MethodNone = "*None*"

// RootParent is the parent notation of a solution graph root.
const RootParent = "-1"

// Equation is a solved or evaluated equation LHS = RHS.
type Equation struct {
	LHS TeX `json:"lhs" toml:"lhs"`
	RHS TeX `json:"rhs" toml:"rhs"`
}

// LaTeXOutput renders the equation. With align set, the relation is marked
// as the alignment point for an align environment.
func (e Equation) LaTeXOutput(align bool) string {
	if align {
		return string(e.LHS) + " &= " + string(e.RHS)
	}
	return string(e.LHS) + " = " + string(e.RHS)
}

// LaTeX implements [Expr].
func (e Equation) LaTeX() string { return e.LaTeXOutput(false) }

// Solution is one branch of a solved variable, identified by its notation
// (for example "th_1s2" for the second solution of th_1).
type Solution struct {
	Notation string `json:"notation" toml:"notation"`
	LHS      TeX    `json:"lhs" toml:"lhs"`
	RHS      TeX    `json:"rhs" toml:"rhs"`
}

// Equation returns the solution as an equation.
func (s Solution) Equation() Equation { return Equation{LHS: s.LHS, RHS: s.RHS} }

// SolutionNode is a solved unknown together with how it was solved.
type SolutionNode struct {
	Symbol      string `json:"symbol" toml:"symbol"`
	SolveOrder  int    `json:"solve_order" toml:"solve_order"`
	SolveMethod string `json:"solve_method" toml:"solve_method"`

	// Solutions are the closed form solutions, one per notation.
	Solutions []Solution `json:"solutions,omitempty" toml:"solutions,omitempty"`

	// Equations are the equations the solver evaluated to get Solutions.
	Equations []Equation `json:"equations,omitempty" toml:"equations,omitempty"`
}

// Used reports whether the node takes part in the solution.
func (n SolutionNode) Used() bool { return n.SolveMethod != MethodNone }

// SortNodes returns the nodes in solution order. Ties are broken by symbol so
// the order is deterministic.
func SortNodes(nodes []SolutionNode) []SolutionNode {
	sorted := slices.Clone(nodes)
	slices.SortStableFunc(sorted, func(a, b SolutionNode) int {
		if c := cmp.Compare(a.SolveOrder, b.SolveOrder); c != 0 {
			return c
		}
		return strings.Compare(a.Symbol, b.Symbol)
	})
	return sorted
}

// UsedNodes returns the used nodes in solution order.
func UsedNodes(nodes []SolutionNode) []SolutionNode {
	return slices.DeleteFunc(SortNodes(nodes), func(n SolutionNode) bool { return !n.Used() })
}

// Variable is an unknown joint variable.
type Variable struct {
	Symbol     string `json:"symbol" toml:"symbol"`
	SolveOrder int    `json:"solve_order" toml:"solve_order"`
}

// SortVariables returns the variables ordered by solve order.
func SortVariables(vars []Variable) []Variable {
	sorted := slices.Clone(vars)
	slices.SortStableFunc(sorted, func(a, b Variable) int {
		return cmp.Compare(a.SolveOrder, b.SolveOrder)
	})
	return sorted
}

// Edge is a dependency in the solution graph: Child was solved using Parent.
type Edge struct {
	Parent string `json:"parent" toml:"parent"`
	Child  string `json:"child" toml:"child"`
}

// IsRoot reports whether the edge marks Child as a root of the graph.
func (e Edge) IsRoot() bool { return e.Parent == RootParent }

func (e Edge) String() string { return fmt.Sprintf("%s -> %s", e.Parent, e.Child) }

// Group is one set of joint solutions (a pose), listed by notation.
type Group []string

func (g Group) String() string { return "[" + strings.Join(g, ", ") + "]" }
