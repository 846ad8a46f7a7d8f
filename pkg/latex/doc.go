// Package latex assembles LaTeX documents and formats kinematic symbols.
//
// # Documents
//
// A [Document] is a preamble, a list of sections and closing lines. Sections
// are added as text and stored line by line:
//
//	doc := latex.NewDocument("LaTex/ik_solution_Puma")
//	doc.AddSection(`\section{Introduction}` + "\n" + intro)
//	if err := doc.Save(); err != nil {
//	    return err
//	}
//
// The default preamble loads amsmath, breqn (for dmath), graphicx and
// hyperref; the closing lines end the document. Both can be replaced with
// [Document.LoadTemplates] or [Document.SetPreamble].
//
// # Symbols
//
// [Symbol] renders a solver symbol name in math mode. The solver names joint
// angles th_N, which become \theta_{N}; every run of digits after an
// underscore is braced so multi-digit subscripts render correctly.
//
// # Text
//
// [Escape] escapes LaTeX special characters in running text such as robot
// names. [Fracify] turns a single top-level division on the right hand side
// of an equation into \frac.
package latex
