package report

import (
	"fmt"
	"strings"

	"github.com/matzehuels/ikreport/pkg/kin"
	"github.com/matzehuels/ikreport/pkg/latex"
)

// edgeSeparator separates the two edges printed on one line of the graph dump.
const edgeSeparator = "     "

func solutionIntroSection(name string, opts Options) string {
	var b strings.Builder
	writeHeading(&b, "Inverse Kinematic Solution for "+name, opts.date())
	b.WriteString(`\section{Introduction}` + "\n")
	fmt.Fprintf(&b, "This report describes closed form inverse kinematics solutions for %s.\n", name)
	writeCredits(&b, "The solution was generated by", "derives your equations", opts.Credits)
	return b.String()
}

func fkIntroSection(name string, opts Options) string {
	var b strings.Builder
	writeHeading(&b, "Forward Kinematic Computations for "+name, opts.date())
	b.WriteString(`\section{Introduction}` + "\n")
	fmt.Fprintf(&b, "This report gives the forward kinematics solutions for %s.\n", name)
	writeCredits(&b, "These equations are automatically generated by", "derives your inverse kinematics equations", opts.Credits)
	return b.String()
}

func writeHeading(b *strings.Builder, title, date string) {
	b.WriteString(`\begin{center}` + "\n")
	fmt.Fprintf(b, `\section*{%s}`+"\n", title)
	b.WriteString(date + "\n")
	b.WriteString(`\end{center}` + "\n")
}

func writeCredits(b *strings.Builder, lead, derives string, c Credits) {
	if c.Package == "" {
		return
	}
	pkg := c.Package + " package"
	if c.URL != "" {
		pkg = `\href{` + c.URL + "}{" + pkg + "}"
	}
	fmt.Fprintf(b, "%s the %s", lead, pkg)
	if c.Lab != "" {
		fmt.Fprintf(b, "\nfrom %s", c.Lab)
	}
	b.WriteString(".\n")
	if c.Paper != "" {
		fmt.Fprintf(b, "The %s package is described in\n\\url{%s}.\n", c.Package, c.Paper)
	}
	if c.Toolchain != "" {
		fmt.Fprintf(b, "%s %s\nusing %s for symbolic mathematics.\n", c.Package, derives, c.Toolchain)
	}
}

func paramSection(dh kin.Matrix) string {
	var b strings.Builder
	b.WriteString(`\section{Kinematic Parameters}` + "\n")
	b.WriteString("The kinematic parameters for this robot are\n")
	b.WriteString(`\[ \left [ \alpha_{i-1}, \quad a_{i-1}, \quad d_i, \quad \theta_i \right  ] \]` + "\n")
	b.WriteString(`\begin{dmath}` + "\n")
	b.WriteString(dh.LaTeX() + "\n")
	b.WriteString(`\end{dmath}` + "\n")
	return b.String()
}

func fkSection(t06 kin.Matrix, opts Options) string {
	var b strings.Builder
	b.WriteString(`\section{Forward Kinematic Equations}` + "\n")
	b.WriteString("The forward kinematic equations for this robot are:\n")
	b.WriteString(`\begin{dmath}` + "\n")
	b.WriteString(kin.IKLHS().LaTeX() + ` = \\` + "\n")
	writeMatrix(&b, t06, opts.Columns)
	b.WriteString(`\end{dmath}` + "\n")
	b.WriteString("Note: column numbers use math notation rather than zero-based indices.\n")
	return b.String()
}

// writeMatrix prints m whole or as labelled columns separated by line breaks.
func writeMatrix(b *strings.Builder, m kin.Matrix, columns bool) {
	if !columns {
		b.WriteString(m.LaTeX() + "\n")
		return
	}
	for c := range m.Cols() {
		if c > 0 {
			b.WriteString(`\\` + "\n")
		}
		fmt.Fprintf(b, `\mathrm{Column \quad %d}\\`+"\n", c+1)
		b.WriteString(m.Column(c).LaTeX() + "\n")
	}
}

func unknownsSection(vars []kin.Variable) string {
	var b strings.Builder
	b.WriteString(`\section{Unknown Variables: }` + "\n")
	if len(vars) == 0 {
		b.WriteString("This robot has no unknown variables.\n")
		return b.String()
	}
	b.WriteString("The unknown variables for this robot are (in solution order):\n")
	b.WriteString(`\begin{enumerate}` + "\n")
	for _, v := range kin.SortVariables(vars) {
		fmt.Fprintf(&b, `\item {%s}`+"\n", latex.Symbol(v.Symbol))
	}
	b.WriteString(`\end{enumerate}` + "\n")
	return b.String()
}

func solutionsSection(nodes []kin.SolutionNode, opts Options) string {
	var b strings.Builder
	b.WriteString(`\section{Solutions}` + "\n")
	b.WriteString("The following equations comprise the full solution set for this robot.\n")
	for _, n := range nodes {
		writeNodeHeading(&b, n)
		if len(n.Solutions) == 0 {
			b.WriteString("No closed form solution was recorded for this variable.\n\n")
			continue
		}
		eqs := make([]string, len(n.Solutions))
		for i, s := range n.Solutions {
			eqs[i] = s.Equation().LaTeXOutput(opts.Align)
			if opts.Fracify {
				eqs[i] = latex.Fracify(eqs[i])
			}
		}
		if opts.Align {
			b.WriteString(`\begin{align}` + "\n")
			b.WriteString(strings.Join(eqs, ` \\`+"\n") + "\n")
			b.WriteString(`\end{align}` + "\n")
		} else {
			for _, eq := range eqs {
				writeDmath(&b, eq)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeNodeHeading(b *strings.Builder, n kin.SolutionNode) {
	fmt.Fprintf(b, `\subsection{%s}`+"\n", latex.Symbol(n.Symbol))
	fmt.Fprintf(b, "Solution Method: %s\n", latex.Escape(n.SolveMethod))
}

func writeDmath(b *strings.Builder, body string) {
	b.WriteString(`\begin{dmath}` + "\n")
	b.WriteString(body + "\n")
	b.WriteString(`\end{dmath}` + "\n")
}

func edgeSection(edges []kin.Edge, name string, opts Options) string {
	var b strings.Builder
	b.WriteString(`\section{Solution Graph (Edges)}` + "\n")
	b.WriteString("The following is the abstract representation of the solution graph for this manipulator (nodes with parent -1 are roots):\n")
	if opts.GraphImage != "" {
		b.WriteString(`\begin{figure}[h]` + "\n")
		b.WriteString(`\centering` + "\n")
		fmt.Fprintf(&b, `\includegraphics[width=0.8\linewidth]{%s}`+"\n", opts.GraphImage)
		fmt.Fprintf(&b, `\caption{Solution dependency graph of %s}`+"\n", name)
		b.WriteString(`\end{figure}` + "\n")
	}
	b.WriteString(`\begin{verbatim}` + "\n")
	b.WriteString(EdgeListing(edges))
	b.WriteString(`\end{verbatim}` + "\n")
	return b.String()
}

// EdgeListing prints edges two per line.
func EdgeListing(edges []kin.Edge) string {
	var b strings.Builder
	for i, e := range edges {
		b.WriteString(e.String())
		if i%2 == 0 && i < len(edges)-1 {
			b.WriteString(edgeSeparator)
		} else {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func solutionSetSection(groups []kin.Group) string {
	var b strings.Builder
	b.WriteString(`\section{Solution Sets}` + "\n")
	b.WriteString("The following are the sets of joint solutions (poses) for this manipulator:\n")
	b.WriteString(`\begin{verbatim}` + "\n")
	for _, g := range groups {
		b.WriteString(g.String() + "\n")
	}
	b.WriteString(`\end{verbatim}` + "\n")
	return b.String()
}

func equationsSection(nodes []kin.SolutionNode) string {
	var b strings.Builder
	b.WriteString(`\section{Equations Used for Solutions}` + "\n")
	for _, n := range nodes {
		writeNodeHeading(&b, n)
		for _, eq := range n.Equations {
			writeDmath(&b, eq.LaTeXOutput(false))
		}
	}
	return b.String()
}

func jacobianSection(j66 kin.Matrix, opts Options) string {
	var b strings.Builder
	b.WriteString(`\newpage` + "\n")
	b.WriteString(`\section{Jacobian Matrix}` + "\n\n")
	b.WriteString(`\begin{dmath}` + "\n")
	b.WriteString(`^6J_6 = \\` + "\n")
	writeMatrix(&b, j66, opts.Columns)
	b.WriteString(`\end{dmath}` + "\n")
	return b.String()
}
