// SPDX-License-Identifier: MIT
// Package contab: marginal quantities derived from a Table.
//
// Purpose:
//   - Provide masses, the expected-independence table and both standardized
//     residual conventions as deterministic pure functions of the table.
//
// Residual conventions (pick one per use site, never mix):
//   - Chi-squared style: (O[i,j] − E[i,j]) / √E[i,j], where E = rᵢ·cⱼ·N.
//     Sum of squares over all cells is the Pearson χ² statistic.
//   - CA style: (P[i,j] − rᵢ·cⱼ) / √(rᵢ·cⱼ), where P = O/N.
//     Sum of squares over all cells is the total inertia (= χ²/N).
//
// The rankings agree; the magnitudes differ by a factor of √N.

package contab

import (
	"fmt"
	"math"
	"strings"
)

// Operation tags for margin kernels.
const (
	opMasses       = "Masses"
	opExpected     = "Expected"
	opCAResiduals  = "CAResiduals"
	opChiResiduals = "ChiResiduals"
)

// Residuals is a labeled R×C matrix of standardized residuals. Unlike Table
// it may hold negative values, so it is a separate read-only value type.
type Residuals struct {
	r, c      int
	rowLabels []string
	colLabels []string
	data      []float64 // flat row-major
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Residuals) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Residuals) Cols() int { return m.c }

// RowLabels returns a copy of the row category names.
func (m *Residuals) RowLabels() []string { return append([]string(nil), m.rowLabels...) }

// ColLabels returns a copy of the column category names.
func (m *Residuals) ColLabels() []string { return append([]string(nil), m.colLabels...) }

// At retrieves the residual at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Residuals) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Residuals.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// SumOfSquares returns Σ m[i,j]² over all cells in a fixed flat order.
// For ChiResiduals this is the Pearson χ² statistic; for CAResiduals it is
// the total inertia. Complexity: O(r*c).
func (m *Residuals) SumOfSquares() float64 {
	var ss float64
	for _, v := range m.data {
		ss += v * v
	}

	return ss
}

// String renders one bracketed line per row for debugging.
func (m *Residuals) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(m.rowLabels[i])
		sb.WriteString(": [")
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%.4f", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Masses returns the row and column mass vectors: rowSum(i)/N and colSum(j)/N.
// Each vector sums to 1 up to floating-point rounding. Entries are strictly
// positive for a valid table. Complexity: O(r+c).
func Masses(t *Table) (row, col []float64, err error) {
	if err = ValidateNotNil(t); err != nil {
		return nil, nil, tableErrorf(opMasses, err)
	}

	row = make([]float64, t.r)
	col = make([]float64, t.c)
	invN := 1.0 / t.total
	for i, s := range t.rowSums {
		row[i] = s * invN
	}
	for j, s := range t.colSums {
		col[j] = s * invN
	}

	return row, col, nil
}

// Expected returns the independence table E[i,j] = rowSum(i)·colSum(j)/N as a
// new *Table with the same labels. Every entry is strictly positive, so the
// result satisfies all Table invariants. Complexity: O(r*c).
func Expected(t *Table) (*Table, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tableErrorf(opExpected, err)
	}

	out := &Table{
		r:         t.r,
		c:         t.c,
		rowLabels: append([]string(nil), t.rowLabels...),
		colLabels: append([]string(nil), t.colLabels...),
		data:      make([]float64, t.r*t.c),
		rowSums:   append([]float64(nil), t.rowSums...),
		colSums:   append([]float64(nil), t.colSums...),
		total:     t.total,
	}
	invN := 1.0 / t.total
	var i, j int
	for i = 0; i < t.r; i++ {
		base := i * t.c
		rs := t.rowSums[i]
		for j = 0; j < t.c; j++ {
			out.data[base+j] = rs * t.colSums[j] * invN
		}
	}

	return out, nil
}

// CAResiduals returns the correspondence-analysis standardized residual
// matrix S[i,j] = (P[i,j] − rᵢ·cⱼ)/√(rᵢ·cⱼ) with P = table/N. This is the
// matrix whose SVD drives correspondence analysis; its sum of squares equals
// the total inertia χ²/N. Complexity: O(r*c).
func CAResiduals(t *Table) (*Residuals, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tableErrorf(opCAResiduals, err)
	}

	rowMass, colMass, err := Masses(t)
	if err != nil {
		return nil, tableErrorf(opCAResiduals, err)
	}

	out := newResiduals(t)
	invN := 1.0 / t.total
	var i, j int
	var rc float64
	for i = 0; i < t.r; i++ {
		base := i * t.c
		for j = 0; j < t.c; j++ {
			rc = rowMass[i] * colMass[j]
			out.data[base+j] = (t.data[base+j]*invN - rc) / math.Sqrt(rc)
		}
	}

	return out, nil
}

// ChiResiduals returns the chi-squared standardized residual matrix
// (O[i,j] − E[i,j])/√E[i,j]. Cells above roughly +2 flag over-represented
// combinations, below −2 under-represented ones. Its sum of squares is the
// Pearson χ² statistic. Complexity: O(r*c).
func ChiResiduals(t *Table) (*Residuals, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tableErrorf(opChiResiduals, err)
	}

	out := newResiduals(t)
	invN := 1.0 / t.total
	var i, j int
	var e float64
	for i = 0; i < t.r; i++ {
		base := i * t.c
		rs := t.rowSums[i]
		for j = 0; j < t.c; j++ {
			e = rs * t.colSums[j] * invN
			out.data[base+j] = (t.data[base+j] - e) / math.Sqrt(e)
		}
	}

	return out, nil
}

// newResiduals allocates a zeroed residual matrix carrying the table labels.
func newResiduals(t *Table) *Residuals {
	return &Residuals{
		r:         t.r,
		c:         t.c,
		rowLabels: append([]string(nil), t.rowLabels...),
		colLabels: append([]string(nil), t.colLabels...),
		data:      make([]float64, t.r*t.c),
	}
}
