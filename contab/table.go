// SPDX-License-Identifier: MIT
// Package contab: Table is the immutable cross-tabulation at the heart of the
// toolkit. It stores counts row-major in a flat slice for cache friendliness
// and precomputes marginal sums once, at construction.

package contab

import (
	"fmt"
	"strings"
)

// tableErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
func tableErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew         = "New"
	opAt          = "At"
	opScale       = "Scale"
	opPermuteRows = "PermuteRows"
	opPermuteCols = "PermuteCols"
)

// Table is an immutable R×C contingency table of non-negative counts with
// named row and column categories.
//
// Invariants (established by New, preserved by every derived operation):
//   - all entries are finite and ≥ 0;
//   - the grand total is > 0;
//   - no row sum and no column sum is zero;
//   - labels are unique within their variable.
type Table struct {
	r, c      int       // number of rows and columns
	rowLabels []string  // row category names, length r
	colLabels []string  // column category names, length c
	data      []float64 // flat row-major counts, length r*c
	rowSums   []float64 // per-row totals, length r
	colSums   []float64 // per-column totals, length c
	total     float64   // grand total N
}

// New builds a validated contingency table from labels and a counts grid.
// Stage 1 (Validate): shapes, label uniqueness, finite non-negative counts.
// Stage 2 (Prepare): copy counts into a flat row-major slice, accumulate
// row/column sums and the grand total in a fixed i→j order.
// Stage 3 (Finalize): reject degenerate margins (zero total, zero row/col).
// Complexity: O(r*c) time and memory.
func New(rowLabels, colLabels []string, counts [][]float64) (*Table, error) {
	if err := validateLabels(rowLabels, colLabels); err != nil {
		return nil, tableErrorf(opNew, err)
	}
	r, c := len(rowLabels), len(colLabels)
	if len(counts) != r {
		return nil, tableErrorf(opNew, ErrDimensionMismatch)
	}

	t := &Table{
		r:         r,
		c:         c,
		rowLabels: append([]string(nil), rowLabels...),
		colLabels: append([]string(nil), colLabels...),
		data:      make([]float64, r*c),
		rowSums:   make([]float64, r),
		colSums:   make([]float64, c),
	}

	// Copy and accumulate in one deterministic pass.
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(counts[i]) != c {
			return nil, tableErrorf(opNew, ErrBadShape)
		}
		base := i * c
		for j = 0; j < c; j++ {
			v = counts[i][j]
			if err := validateCount(v); err != nil {
				return nil, tableErrorf(opNew, fmt.Errorf("cell (%d,%d): %w", i, j, err))
			}
			t.data[base+j] = v
			t.rowSums[i] += v
			t.colSums[j] += v
			t.total += v
		}
	}

	if err := validateMarginals(t); err != nil {
		return nil, tableErrorf(opNew, err)
	}

	return t, nil
}

// FromRows builds a table from integer tallies, the common case for raw
// counts. Same validation as New. Complexity: O(r*c).
func FromRows(rowLabels, colLabels []string, counts [][]int) (*Table, error) {
	grid := make([][]float64, len(counts))
	for i, row := range counts {
		grid[i] = make([]float64, len(row))
		for j, v := range row {
			grid[i][j] = float64(v)
		}
	}

	return New(rowLabels, colLabels, grid)
}

// Rows returns the number of row categories. Complexity: O(1).
func (t *Table) Rows() int { return t.r }

// Cols returns the number of column categories. Complexity: O(1).
func (t *Table) Cols() int { return t.c }

// RowLabels returns a copy of the row category names.
func (t *Table) RowLabels() []string { return append([]string(nil), t.rowLabels...) }

// ColLabels returns a copy of the column category names.
func (t *Table) ColLabels() []string { return append([]string(nil), t.colLabels...) }

// At retrieves the count at (row, col) or ErrOutOfRange on bad indices.
// Complexity: O(1).
func (t *Table) At(row, col int) (float64, error) {
	if row < 0 || row >= t.r || col < 0 || col >= t.c {
		return 0, tableErrorf(opAt, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}

	return t.data[row*t.c+col], nil
}

// RowSums returns a copy of the per-row totals.
func (t *Table) RowSums() []float64 { return append([]float64(nil), t.rowSums...) }

// ColSums returns a copy of the per-column totals.
func (t *Table) ColSums() []float64 { return append([]float64(nil), t.colSums...) }

// GrandTotal returns the sum of all cells (N). Always > 0 for a valid table.
func (t *Table) GrandTotal() float64 { return t.total }

// Scale returns a new table with every cell multiplied by k (k > 0, finite).
// Masses, residuals and CA coordinates of the scaled table are identical to
// the original; only the grand total changes. Complexity: O(r*c).
func (t *Table) Scale(k float64) (*Table, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tableErrorf(opScale, err)
	}
	if err := validateScale(k); err != nil {
		return nil, tableErrorf(opScale, err)
	}

	out := &Table{
		r:         t.r,
		c:         t.c,
		rowLabels: append([]string(nil), t.rowLabels...),
		colLabels: append([]string(nil), t.colLabels...),
		data:      make([]float64, len(t.data)),
		rowSums:   make([]float64, t.r),
		colSums:   make([]float64, t.c),
		total:     t.total * k,
	}
	for idx, v := range t.data {
		out.data[idx] = v * k
	}
	for i, v := range t.rowSums {
		out.rowSums[i] = v * k
	}
	for j, v := range t.colSums {
		out.colSums[j] = v * k
	}

	return out, nil
}

// PermuteRows returns a new table whose row i is the receiver's row perm[i].
// perm must be a bijection over [0, Rows). Column order is unchanged.
// Complexity: O(r*c).
func (t *Table) PermuteRows(perm []int) (*Table, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tableErrorf(opPermuteRows, err)
	}
	if err := validatePermutation(perm, t.r); err != nil {
		return nil, tableErrorf(opPermuteRows, err)
	}

	out := &Table{
		r:         t.r,
		c:         t.c,
		rowLabels: make([]string, t.r),
		colLabels: append([]string(nil), t.colLabels...),
		data:      make([]float64, len(t.data)),
		rowSums:   make([]float64, t.r),
		colSums:   append([]float64(nil), t.colSums...),
		total:     t.total,
	}
	for i, src := range perm {
		out.rowLabels[i] = t.rowLabels[src]
		out.rowSums[i] = t.rowSums[src]
		copy(out.data[i*t.c:(i+1)*t.c], t.data[src*t.c:(src+1)*t.c])
	}

	return out, nil
}

// PermuteCols returns a new table whose column j is the receiver's column
// perm[j]. perm must be a bijection over [0, Cols). Complexity: O(r*c).
func (t *Table) PermuteCols(perm []int) (*Table, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tableErrorf(opPermuteCols, err)
	}
	if err := validatePermutation(perm, t.c); err != nil {
		return nil, tableErrorf(opPermuteCols, err)
	}

	out := &Table{
		r:         t.r,
		c:         t.c,
		rowLabels: append([]string(nil), t.rowLabels...),
		colLabels: make([]string, t.c),
		data:      make([]float64, len(t.data)),
		rowSums:   append([]float64(nil), t.rowSums...),
		colSums:   make([]float64, t.c),
		total:     t.total,
	}
	var i, j int
	for j = 0; j < t.c; j++ {
		out.colLabels[j] = t.colLabels[perm[j]]
		out.colSums[j] = t.colSums[perm[j]]
	}
	for i = 0; i < t.r; i++ {
		base := i * t.c
		for j = 0; j < t.c; j++ {
			out.data[base+j] = t.data[base+perm[j]]
		}
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging: one bracketed line per
// row, labels included. Complexity: O(r*c).
func (t *Table) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < t.r; i++ {
		sb.WriteString(t.rowLabels[i])
		sb.WriteString(": [")
		for j = 0; j < t.c; j++ {
			fmt.Fprintf(&sb, "%g", t.data[i*t.c+j])
			if j < t.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
