// Package nodelink draws solution graphs as node-link diagrams.
//
// # Overview
//
// Each notation of a solved variable (th_1s1, th_2s2, ...) becomes a box and
// each dependency an arrow from the solution it was derived from. Roots, the
// solutions with parent -1, are shaded and every level of the graph is kept
// on its own rank, so the diagram reads top to bottom in solve order.
//
// # Usage
//
//	g, err := solgraph.FromEdges(robot.NotationGraph)
//	if err != nil {
//	    return err
//	}
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	png, err := nodelink.Render(ctx, dot, nodelink.FormatPNG)
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], which runs Graphviz in
// process. No external binaries are needed.
package nodelink
