package nodelink

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/ikreport/pkg/solgraph"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds the graph level to each node label.
	Detailed bool

	// Title is drawn above the graph when set.
	Title string
}

// ToDOT converts a solution graph to Graphviz DOT source.
func ToDOT(g *solgraph.Graph, opts Options) string {
	levels := g.Levels()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(id, levels[id], opts.Detailed))}
		if g.IsRoot(id) {
			attrs = append(attrs, "fillcolor=lightblue", "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	for _, rank := range rankGroups(g.Nodes(), levels) {
		quoted := make([]string, len(rank))
		for i, id := range rank {
			quoted[i] = fmt.Sprintf("%q", id)
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(quoted, "; "))
	}
	buf.WriteString("\n")

	for _, e := range g.Edges() {
		if e.IsRoot() {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Parent, e.Child)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(id string, level int, detailed bool) string {
	if !detailed {
		return id
	}
	return fmt.Sprintf("%s\nlevel: %d", id, level)
}

// rankGroups returns the nodes of each level holding more than one node,
// ordered by level and keeping node order within a level.
func rankGroups(nodes []string, levels map[string]int) [][]string {
	byLevel := make(map[int][]string)
	for _, id := range nodes {
		byLevel[levels[id]] = append(byLevel[levels[id]], id)
	}
	keys := make([]int, 0, len(byLevel))
	for k := range byLevel {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var groups [][]string
	for _, k := range keys {
		if len(byLevel[k]) > 1 {
			groups = append(groups, byLevel[k])
		}
	}
	return groups
}
