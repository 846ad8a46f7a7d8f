package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	pkgio "github.com/matzehuels/ikreport/pkg/io"
	"github.com/matzehuels/ikreport/pkg/kin/kintest"
)

// setupCLI isolates config and cache directories and writes the two-link
// fixture as a JSON bundle.
func setupCLI(t *testing.T) (*CLI, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	b := kintest.TwoLink()
	path := filepath.Join(t.TempDir(), "two_link.json")
	if err := pkgio.ExportJSON(&b, path); err != nil {
		t.Fatal(err)
	}
	return New(&bytes.Buffer{}, log.InfoLevel), path
}

func execute(t *testing.T, c *CLI, args ...string) error {
	t.Helper()
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func TestReportCommand(t *testing.T) {
	c, bundle := setupCLI(t)
	out := t.TempDir()

	if err := execute(t, c, "report", bundle, "-o", out, "--no-cache", "--title", "Arm"); err != nil {
		t.Fatalf("report: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "ik_solution_Two_Link.tex"))
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(data), "Inverse Kinematic Solution for Two\\_Link") {
		t.Error("report is missing its title section")
	}
	copied, err := os.ReadFile(filepath.Join(out, "IK_solution.tex"))
	if err != nil {
		t.Fatalf("default copy not written: %v", err)
	}
	if !bytes.Equal(data, copied) {
		t.Error("IK_solution.tex differs from the report")
	}
}

func TestFKCommand(t *testing.T) {
	c, bundle := setupCLI(t)
	out := t.TempDir()

	if err := execute(t, c, "fk", bundle, "-o", out, "--no-cache"); err != nil {
		t.Fatalf("fk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "fk_equations_Two_Link.tex")); err != nil {
		t.Errorf("fk report not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "IK_solution.tex")); !os.IsNotExist(err) {
		t.Error("fk report must not be copied to IK_solution.tex")
	}
}

func TestReportCommandErrors(t *testing.T) {
	c, bundle := setupCLI(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing bundle", []string{"report", filepath.Join(t.TempDir(), "nope.json")}},
		{"unsupported extension", []string{"report", strings.TrimSuffix(bundle, ".json") + ".yaml"}},
		{"no args", []string{"report"}},
		{"graph flag on fk", []string{"fk", bundle, "--graph"}},
		{"bad default name", []string{"report", bundle, "-o", t.TempDir(), "--no-cache", "--default-name", "../x.tex"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := execute(t, c, tt.args...); err == nil {
				t.Errorf("%v: expected error", tt.args)
			}
		})
	}
}

func TestGraphCommandDOT(t *testing.T) {
	c, bundle := setupCLI(t)
	out := filepath.Join(t.TempDir(), "graph.dot")

	if err := execute(t, c, "graph", bundle, "-f", "dot", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("graph: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "digraph") {
		t.Errorf("output is not DOT: %.40q", data)
	}
}

func TestSummarize(t *testing.T) {
	b := kintest.TwoLink()
	got := summarize(&b)

	for _, want := range []string{"Two_Link", "2 of 3 nodes", "th_12", "atan2(y,x)", "5 edges"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestNodeListModel(t *testing.T) {
	b := kintest.TwoLink()
	m := NewNodeListModel(&b)

	if len(m.Nodes) != 3 || m.Nodes[0].Symbol != "th_1" {
		t.Fatalf("nodes not in solve order: %+v", m.Nodes)
	}

	press := func(m NodeListModel, msg tea.KeyMsg) (NodeListModel, tea.Cmd) {
		next, cmd := m.Update(msg)
		return next.(NodeListModel), cmd
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2 (clamped)", m.Cursor)
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", m.Cursor)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Expanded {
		t.Fatal("enter should expand details")
	}
	if view := m.View(); !strings.Contains(view, "th_2s1") || !strings.Contains(view, "r_{21} = s_{12}") {
		t.Errorf("details missing solutions or equations:\n%s", view)
	}

	if _, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("q should quit")
	}
}
