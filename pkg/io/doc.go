// Package io reads and writes report bundles as JSON or TOML.
//
// # Format
//
// A bundle holds the robot, its unknown variables, and the solution sets.
// Every symbolic quantity is a LaTeX string rendered by the solver:
//
//	{
//	  "robot": {
//	    "name": "UR5",
//	    "mechanism": {"dh": [[...]], "t06": [[...]], "j66": [[...]]},
//	    "solution_nodes": [
//	      {
//	        "symbol": "th_1",
//	        "solve_order": 1,
//	        "solve_method": "atan2(y,x)",
//	        "solutions": [{"notation": "th_1s1", "lhs": "\\theta_{1}", "rhs": "..."}],
//	        "equations": [{"lhs": "Px", "rhs": "..."}]
//	      }
//	    ],
//	    "notation_graph": [{"parent": "-1", "child": "th_1s1"}]
//	  },
//	  "variables": [{"symbol": "th_1", "solve_order": 1}],
//	  "groups": [["th_1s1", "th_2s1"]]
//	}
//
// The TOML form uses the same keys. [Import] picks the decoder from the file
// extension.
//
// Decoding checks that matrices are rectangular. Everything else is checked
// by [kin.Bundle.Validate] when a report is built, so a bundle can be
// imported and inspected even when it would not make a valid report.
package io
