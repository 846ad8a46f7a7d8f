// Package kin defines the input model of an inverse-kinematics report.
//
// # Overview
//
// The data in this package is produced elsewhere: a symbolic solver derives
// the forward kinematics, solves the unknown joint variables and groups the
// solutions into poses. ikreport only formats those results, so every
// symbolic quantity arrives already rendered as LaTeX.
//
// The boundary to a symbolic algebra library is the [Expr] interface. Any
// expression type with a LaTeX() method satisfies it, and [TeX] is the
// string form used by data files.
//
// # Bundle
//
// A [Bundle] holds everything one report needs:
//
//	b := kin.Bundle{
//	    Robot: kin.Robot{
//	        Name: "Puma",
//	        Mech: kin.Mechanism{DH: dh, T06: t06, J66: j66},
//	        SolutionNodes: nodes,
//	        NotationGraph: edges,
//	    },
//	    Variables: vars,
//	    Groups:    groups,
//	}
//	if err := b.Validate(); err != nil {
//	    return err
//	}
//
// # Unused Variables
//
// Solution nodes whose SolveMethod is [MethodNone] stand for extra variables
// (typically sums of angles) that the solver introduced but never used.
// Reports skip them.
package kin
