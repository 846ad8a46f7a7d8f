package report

import (
	"github.com/matzehuels/ikreport/pkg/errors"
)

// Kind selects which report to build.
type Kind string

const (
	KindSolution Kind = "solution"
	KindFK       Kind = "fk"
)

// DefaultName is the file the latest solution report is copied to.
const DefaultName = "IK_solution.tex"

// ParseKind parses a report kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSolution, KindFK:
		return Kind(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidKind, "invalid report kind: %q (must be one of: solution, fk)", s)
}

// FileName returns the report base name for a robot, without extension.
func FileName(kind Kind, robotName string) string {
	if kind == KindFK {
		return "fk_equations_" + robotName
	}
	return "ik_solution_" + robotName
}

// Credits describes the system that generated the solution. It is printed
// in the introduction.
type Credits struct {
	Package   string `toml:"package" json:"package"`
	URL       string `toml:"url" json:"url"`
	Lab       string `toml:"lab" json:"lab"`
	Paper     string `toml:"paper" json:"paper"`
	Toolchain string `toml:"toolchain" json:"toolchain"`
}

// DefaultCredits returns the credits of the IK-BT solver.
func DefaultCredits() Credits {
	return Credits{
		Package:   "IK-BT",
		URL:       "https://github.com/uw-biorobotics/IKBT",
		Lab:       "the University of Washington Biorobotics Lab",
		Paper:     "https://arxiv.org/abs/1711.05412",
		Toolchain: `{\tt Python 3.8} and the {\tt sympy 1.9} module`,
	}
}

// Options controls report formatting.
type Options struct {
	// Columns prints matrices column by column, which keeps long entries
	// readable. When false whole matrices are printed.
	Columns bool

	// Align typesets the solutions of a variable in one align environment.
	// When false each solution gets its own dmath environment.
	Align bool

	// Fracify rewrites single divisions in solutions as \frac.
	Fracify bool

	// GraphImage, when set, is included as a figure of the solution graph.
	GraphImage string

	// Title is added to the preamble as a centered heading.
	Title string

	// Date is printed under the heading. Defaults to \today.
	Date string

	// Preamble and Close are template files replacing the defaults.
	Preamble string
	Close    string

	Credits Credits
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Columns: true,
		Align:   true,
		Fracify: true,
		Credits: DefaultCredits(),
	}
}

func (o Options) date() string {
	if o.Date == "" {
		return `\today`
	}
	return o.Date
}
