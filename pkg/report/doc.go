// Package report formats inverse-kinematics results as LaTeX reports.
//
// # Report Kinds
//
// Two reports are built from a [kin.Bundle]:
//
//   - [KindSolution]: the full solution report with introduction, kinematic
//     parameters, forward kinematics, unknowns, solutions, the solution graph,
//     solution sets, the equations used, and the Jacobian.
//   - [KindFK]: the forward kinematics report with introduction, kinematic
//     parameters, forward kinematics, and the Jacobian.
//
// # Usage
//
//	doc, err := report.Build(report.KindSolution, &bundle, "LaTex", report.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	if err := doc.Save(); err != nil {
//	    return err
//	}
//
// The document is named after the robot ([FileName]). The solution report is
// conventionally copied to [DefaultName] as well, so a fixed LaTeX driver can
// always compile the latest report; [pipeline.Runner] does that.
//
// # Symbolic Content
//
// Nothing here does algebra. Matrices and equations carry LaTeX rendered by
// the solver; this package only arranges it into environments (dmath from
// breqn for long expressions, align for solution lists).
//
// [pipeline.Runner]: github.com/matzehuels/ikreport/pkg/pipeline.Runner
package report
