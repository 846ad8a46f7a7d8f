package kin

import (
	"strings"

	"github.com/matzehuels/ikreport/pkg/errors"
)

// Expr is a symbolic expression that can render itself as LaTeX.
type Expr interface {
	LaTeX() string
}

// TeX is an expression that was rendered to LaTeX by the solver.
type TeX string

// LaTeX returns the markup unchanged.
func (t TeX) LaTeX() string { return string(t) }

// Matrix is a rectangular matrix of rendered cells, stored row by row.
type Matrix [][]TeX

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Empty reports whether the matrix has no cells.
func (m Matrix) Empty() bool { return m.Rows() == 0 || m.Cols() == 0 }

// Column returns column c as an n×1 matrix.
// It panics if c is out of range, like slice indexing.
func (m Matrix) Column(c int) Matrix {
	col := make(Matrix, len(m))
	for i, row := range m {
		col[i] = []TeX{row[c]}
	}
	return col
}

// LaTeX renders the matrix the way sympy prints matrices:
//
//	\left[\begin{matrix}a & b\\c & d\end{matrix}\right]
func (m Matrix) LaTeX() string {
	var b strings.Builder
	b.WriteString(`\left[\begin{matrix}`)
	for i, row := range m {
		if i > 0 {
			b.WriteString(`\\`)
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteString(" & ")
			}
			b.WriteString(string(cell))
		}
	}
	b.WriteString(`\end{matrix}\right]`)
	return b.String()
}

// Validate checks that every row has the same length.
func (m Matrix) Validate() error {
	cols := m.Cols()
	for i, row := range m {
		if len(row) != cols {
			return errors.New(errors.ErrCodeInvalidMatrix, "row %d has %d columns, want %d", i+1, len(row), cols)
		}
	}
	return nil
}

// validateShape checks a matrix against an expected shape. A negative
// dimension accepts any size.
func (m Matrix) validateShape(name string, rows, cols int) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidMatrix, err, "%s", name)
	}
	if rows >= 0 && m.Rows() != rows {
		return errors.New(errors.ErrCodeInvalidMatrix, "%s has %d rows, want %d", name, m.Rows(), rows)
	}
	if cols >= 0 && m.Cols() != cols {
		return errors.New(errors.ErrCodeInvalidMatrix, "%s has %d columns, want %d", name, m.Cols(), cols)
	}
	return nil
}

// IKLHS returns the symbolic end-effector pose matrix that forms the left
// hand side of the forward kinematic equations.
func IKLHS() Matrix {
	return Matrix{
		{"r_{11}", "r_{12}", "r_{13}", "Px"},
		{"r_{21}", "r_{22}", "r_{23}", "Py"},
		{"r_{31}", "r_{32}", "r_{33}", "Pz"},
		{"0", "0", "0", "1"},
	}
}
