// Package kintest provides kinematic fixtures for tests.
package kintest

import "github.com/matzehuels/ikreport/pkg/kin"

// TwoLink returns the bundle of a planar two-link arm with two solution
// branches and one unused sum-of-angles variable.
func TwoLink() kin.Bundle {
	return kin.Bundle{
		Robot: kin.Robot{
			Name: "test: Two_Link",
			Mech: kin.Mechanism{
				DH: kin.Matrix{
					{"0", "0", "0", `\theta_{1}`},
					{"0", "l_{1}", "0", `\theta_{2}`},
				},
				T06: kin.Matrix{
					{`c_{12}`, `- s_{12}`, "0", `l_{1} c_{1}`},
					{`s_{12}`, `c_{12}`, "0", `l_{1} s_{1}`},
					{"0", "0", "1", "0"},
					{"0", "0", "0", "1"},
				},
				J66: kin.Matrix{
					{`l_{1} s_{2}`, "0"},
					{`l_{1} c_{2}`, "0"},
					{"0", "0"},
					{"0", "0"},
					{"0", "0"},
					{"1", "1"},
				},
			},
			SolutionNodes: []kin.SolutionNode{
				{
					Symbol:      "th_2",
					SolveOrder:  2,
					SolveMethod: "arcsin",
					Solutions: []kin.Solution{
						{Notation: "th_2s1", LHS: `\theta_{2}`, RHS: `\operatorname{asin}{\left(r_{21} \right)} - \theta_{1}`},
						{Notation: "th_2s2", LHS: `\theta_{2}`, RHS: `\pi - \operatorname{asin}{\left(r_{21} \right)} - \theta_{1}`},
					},
					Equations: []kin.Equation{{LHS: `r_{21}`, RHS: `s_{12}`}},
				},
				{
					Symbol:      "th_12",
					SolveOrder:  3,
					SolveMethod: kin.MethodNone,
				},
				{
					Symbol:      "th_1",
					SolveOrder:  1,
					SolveMethod: "atan2(y,x)",
					Solutions: []kin.Solution{
						{Notation: "th_1s1", LHS: `\theta_{1}`, RHS: `\operatorname{atan_{2}}{\left(Py,Px \right)}`},
						{Notation: "th_1s2", LHS: `\theta_{1}`, RHS: `\operatorname{atan_{2}}{\left(- Py,- Px \right)}`},
					},
					Equations: []kin.Equation{
						{LHS: "Px", RHS: `l_{1} c_{1}`},
						{LHS: "Py", RHS: `l_{1} s_{1}`},
					},
				},
			},
			NotationGraph: []kin.Edge{
				{Parent: kin.RootParent, Child: "th_1s1"},
				{Parent: kin.RootParent, Child: "th_1s2"},
				{Parent: "th_1s1", Child: "th_2s1"},
				{Parent: "th_1s2", Child: "th_2s2"},
				{Parent: "th_1s1", Child: "th_2s2"},
			},
		},
		Variables: []kin.Variable{
			{Symbol: "th_2", SolveOrder: 2},
			{Symbol: "th_1", SolveOrder: 1},
		},
		Groups: []kin.Group{
			{"th_1s1", "th_2s1"},
			{"th_1s2", "th_2s2"},
		},
	}
}
