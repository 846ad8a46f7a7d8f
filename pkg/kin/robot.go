package kin

import (
	"strings"

	"github.com/matzehuels/ikreport/pkg/errors"
)

// testPrefix is stripped from robot names; the solver prepends it to names
// of its built-in test robots.
const testPrefix = "test: "

// Mechanism holds the kinematic matrices of a manipulator.
type Mechanism struct {
	// DH is the Denavit-Hartenberg table, one row [alpha_{i-1}, a_{i-1}, d_i, theta_i] per joint.
	DH Matrix `json:"dh" toml:"dh"`
	// T06 is the base to end-effector transform.
	T06 Matrix `json:"t06" toml:"t06"`
	// J66 is the Jacobian expressed in frame 6.
	J66 Matrix `json:"j66" toml:"j66"`
}

// Robot is a manipulator together with its solution.
type Robot struct {
	Name          string         `json:"name" toml:"name"`
	Mech          Mechanism      `json:"mechanism" toml:"mechanism"`
	SolutionNodes []SolutionNode `json:"solution_nodes,omitempty" toml:"solution_nodes,omitempty"`
	NotationGraph []Edge         `json:"notation_graph,omitempty" toml:"notation_graph,omitempty"`
}

// DisplayName returns the name without the solver's test prefix.
func (r Robot) DisplayName() string {
	return strings.Replace(r.Name, testPrefix, "", 1)
}

// Bundle is the complete input of a report.
type Bundle struct {
	Robot     Robot      `json:"robot" toml:"robot"`
	Variables []Variable `json:"variables,omitempty" toml:"variables,omitempty"`
	Groups    []Group    `json:"groups,omitempty" toml:"groups,omitempty"`
}

// ValidateKinematics checks the parts every report uses: the robot name and
// the shapes of the mechanism matrices.
func (b *Bundle) ValidateKinematics() error {
	if err := errors.ValidateRobotName(b.Robot.DisplayName()); err != nil {
		return err
	}
	m := b.Robot.Mech
	if err := m.DH.validateShape("DH table", -1, 4); err != nil {
		return err
	}
	if err := m.T06.validateShape("T06", 4, 4); err != nil {
		return err
	}
	if err := m.J66.validateShape("J66", 6, -1); err != nil {
		return err
	}
	return nil
}

// Validate checks the whole bundle for a full solution report.
func (b *Bundle) Validate() error {
	if err := b.ValidateKinematics(); err != nil {
		return err
	}
	for _, v := range b.Variables {
		if err := errors.ValidateSymbol(v.Symbol); err != nil {
			return err
		}
	}

	known := make(map[string]bool)
	for _, n := range b.Robot.SolutionNodes {
		if err := errors.ValidateSymbol(n.Symbol); err != nil {
			return err
		}
		if n.Used() && strings.TrimSpace(n.SolveMethod) == "" {
			return errors.New(errors.ErrCodeInvalidInput, "solution node %s has no solve method", n.Symbol)
		}
		known[n.Symbol] = true
		for _, s := range n.Solutions {
			if s.Notation != "" {
				known[s.Notation] = true
			}
		}
	}

	// Edges may only name notations of known nodes. Graphs without any node
	// data are printed as given.
	if len(known) == 0 {
		return nil
	}
	for _, e := range b.Robot.NotationGraph {
		if !e.IsRoot() && !known[e.Parent] {
			return errors.New(errors.ErrCodeInvalidGraph, "edge %s: unknown parent %q", e, e.Parent)
		}
		if !known[e.Child] {
			return errors.New(errors.ErrCodeInvalidGraph, "edge %s: unknown child %q", e, e.Child)
		}
	}
	return nil
}
