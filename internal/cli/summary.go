package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/ikreport/pkg/io"
	"github.com/matzehuels/ikreport/pkg/kin"
	"github.com/matzehuels/ikreport/pkg/solgraph"
)

func (c *CLI) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [bundle]",
		Short: "Print an overview of a bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := pkgio.Import(args[0])
			if err != nil {
				return err
			}
			fmt.Println(summarize(b))
			return nil
		},
	}
}

// summarize renders the bundle overview: key figures, the state of the
// solution graph, and a table of the solution nodes.
func summarize(b *kin.Bundle) string {
	nodes := kin.SortNodes(b.Robot.SolutionNodes)
	used := kin.UsedNodes(nodes)
	solutions := 0
	for _, n := range used {
		solutions += len(n.Solutions)
	}

	out := StyleTitle.Render(b.Robot.DisplayName()) + "\n"
	out += keyValue("Joints", strconv.Itoa(b.Robot.Mech.DH.Rows()))
	out += keyValue("Unknowns", strconv.Itoa(len(b.Variables)))
	out += keyValue("Solved", fmt.Sprintf("%d of %d nodes", len(used), len(nodes)))
	out += keyValue("Solutions", strconv.Itoa(solutions))
	out += keyValue("Sets", strconv.Itoa(len(b.Groups)))
	out += keyValue("Graph", graphStatus(b.Robot.NotationGraph))

	if err := b.Validate(); err != nil {
		out += StyleWarning.Render("! "+err.Error()) + "\n"
	}
	if len(nodes) == 0 {
		return out
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, len(nodes))
	for i, n := range nodes {
		rows[i] = []string{n.Symbol, strconv.Itoa(n.SolveOrder), n.SolveMethod, strconv.Itoa(len(n.Solutions)), strconv.Itoa(len(n.Equations))}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Symbol", "Order", "Method", "Solutions", "Equations").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < len(nodes) && !nodes[row].Used() {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})
	return out + "\n" + t.Render()
}

func graphStatus(edges []kin.Edge) string {
	g, err := solgraph.FromEdges(edges)
	if err != nil {
		return "invalid: " + err.Error()
	}
	if err := g.Validate(); err != nil {
		return "invalid: " + err.Error()
	}
	return fmt.Sprintf("%d notations, %d edges, %d roots", g.NodeCount(), g.EdgeCount(), len(g.Roots()))
}
