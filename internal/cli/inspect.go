package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/ikreport/pkg/io"
	"github.com/matzehuels/ikreport/pkg/kin"
)

var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	detailHeadStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
)

// NodeListModel is the bubbletea model for browsing solution nodes.
type NodeListModel struct {
	Robot    string
	Nodes    []kin.SolutionNode
	Cursor   int
	Offset   int
	Height   int
	Expanded bool
}

// NewNodeListModel lists the nodes of b in solve order, unused ones included.
func NewNodeListModel(b *kin.Bundle) NodeListModel {
	return NodeListModel{
		Robot:  b.Robot.DisplayName(),
		Nodes:  kin.SortNodes(b.Robot.SolutionNodes),
		Height: 12,
	}
}

func (m NodeListModel) Init() tea.Cmd {
	return nil
}

func (m NodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			m.Expanded = !m.Expanded
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height/2-4, 3)
	}
	return m, nil
}

func (m NodeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Solution nodes · " + m.Robot))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if len(m.Nodes) == 0 {
		b.WriteString(listDimStyle.Render("  no solution nodes"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Nodes))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		n := m.Nodes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, n.Symbol, strconv.Itoa(n.SolveOrder), n.SolveMethod, strconv.Itoa(len(n.Solutions))})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Symbol", "Order", "Method", "Solutions").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Nodes) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if !m.Nodes[idx].Used() {
				base = base.Foreground(colorDim)
			}
			if idx == m.Cursor {
				return base.Foreground(colorCyan).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Nodes))))
	b.WriteString("\n")

	if m.Expanded {
		b.WriteString("\n")
		b.WriteString(nodeDetail(m.Nodes[m.Cursor]))
	}
	return b.String()
}

// nodeDetail lists the solutions and equations of n.
func nodeDetail(n kin.SolutionNode) string {
	var b strings.Builder
	if !n.Used() {
		b.WriteString(listDimStyle.Render(n.Symbol + " is not part of the solution"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(detailHeadStyle.Render("Solutions"))
	b.WriteString("\n")
	for _, s := range n.Solutions {
		b.WriteString("  " + StyleHighlight.Render(s.Notation) + "  " + s.Equation().LaTeX() + "\n")
	}
	if len(n.Equations) > 0 {
		b.WriteString(detailHeadStyle.Render("Equations"))
		b.WriteString("\n")
		for _, eq := range n.Equations {
			b.WriteString("  " + eq.LaTeX() + "\n")
		}
	}
	return b.String()
}

func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [bundle]",
		Short: "Browse the solution nodes of a bundle interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := pkgio.Import(args[0])
			if err != nil {
				return err
			}
			if len(b.Robot.SolutionNodes) == 0 {
				printWarning("%s has no solution nodes", b.Robot.DisplayName())
				return nil
			}
			p := tea.NewProgram(NewNodeListModel(b), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}
