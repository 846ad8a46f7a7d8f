package report

import (
	"path/filepath"

	"github.com/matzehuels/ikreport/pkg/kin"
	"github.com/matzehuels/ikreport/pkg/latex"
)

// Validate checks that b holds what a report of the given kind prints. The
// FK report needs only the robot name and the kinematic matrices.
func Validate(kind Kind, b *kin.Bundle) error {
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}
	if kind == KindFK {
		return b.ValidateKinematics()
	}
	return b.Validate()
}

// Build validates b and assembles the report of the given kind. The
// document is named after the robot inside dir.
func Build(kind Kind, b *kin.Bundle, dir string, opts Options) (*latex.Document, error) {
	if err := Validate(kind, b); err != nil {
		return nil, err
	}

	name := b.Robot.DisplayName()
	doc := latex.NewDocument(filepath.Join(dir, FileName(kind, name)))
	if err := doc.LoadTemplates(opts.Preamble, opts.Close); err != nil {
		return nil, err
	}
	if opts.Title != "" {
		doc.SetTitle(latex.Escape(opts.Title))
	}

	fixed := latex.Escape(name)
	mech := b.Robot.Mech
	switch kind {
	case KindFK:
		doc.AddSection(fkIntroSection(fixed, opts))
		doc.AddSection(paramSection(mech.DH))
		doc.AddSection(fkSection(mech.T06, opts))
		doc.AddSection(jacobianSection(mech.J66, opts))
	default:
		nodes := kin.UsedNodes(b.Robot.SolutionNodes)
		doc.AddSection(solutionIntroSection(fixed, opts))
		doc.AddSection(paramSection(mech.DH))
		doc.AddSection(fkSection(mech.T06, opts))
		doc.AddSection(unknownsSection(b.Variables))
		doc.AddSection(solutionsSection(nodes, opts))
		doc.AddSection(edgeSection(b.Robot.NotationGraph, fixed, opts))
		doc.AddSection(solutionSetSection(b.Groups))
		doc.AddSection(equationsSection(nodes))
		doc.AddSection(jacobianSection(mech.J66, opts))
	}
	return doc, nil
}

// Solution builds the full solution report.
func Solution(b *kin.Bundle, dir string, opts Options) (*latex.Document, error) {
	return Build(KindSolution, b, dir, opts)
}

// ForwardKinematics builds the forward kinematics report.
func ForwardKinematics(b *kin.Bundle, dir string, opts Options) (*latex.Document, error) {
	return Build(KindFK, b, dir, opts)
}
