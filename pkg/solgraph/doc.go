// Package solgraph models the solution dependency graph of an IK solution.
//
// # Overview
//
// Each solution of a joint variable is identified by a notation such as
// "th_1s2". A solution of one variable is usually computed from solutions of
// variables solved earlier, which gives a directed graph from parent to child
// notations. The solver lists the graph as edges; an edge whose parent is -1
// ([kin.RootParent]) marks its child as a root.
//
// The graph is not a tree: a notation may depend on several parents.
//
// # Usage
//
//	g, err := solgraph.FromEdges(robot.NotationGraph)
//	if err != nil {
//	    return err
//	}
//	if err := g.Validate(); err != nil {
//	    return err
//	}
//	levels := g.Levels()
//
// # Concurrency
//
// Graph is not safe for concurrent modification. Concurrent readers are fine
// once construction is complete.
package solgraph
