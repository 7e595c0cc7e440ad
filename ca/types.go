// Package ca: result types for correspondence analysis.

package ca

// Axis is one principal axis of the correspondence map.
//
// Fields:
//   - Inertia   — the eigenvalue σₖ² of this axis.
//   - Percent   — Inertia as a percentage of the total inertia (0..100).
//   - RowCoords — principal coordinates of the row categories, length R,
//     Fᵢ = Uᵢ·σ/√rᵢ, indexed like Result.RowLabels.
//   - ColCoords — principal coordinates of the column categories, length C,
//     Gⱼ = Vⱼ·σ/√cⱼ, indexed like Result.ColLabels.
//
// Row and column coordinates of one axis share a sign convention: a row and
// a column with large same-signed coordinates are positively associated.
type Axis struct {
	Inertia   float64
	Percent   float64
	RowCoords []float64
	ColCoords []float64
}

// Result is the complete outcome of one analysis.
//
// Axes are ordered by descending inertia. Their count is at most
// min(R,C) − 1 and may be smaller when the residual matrix is rank
// deficient (perfectly collinear categories); callers must not assume a
// fixed axis count. TotalInertia is the sum over ALL non-trivial singular
// values, including any axes dropped for rank deficiency, and equals the
// chi-squared statistic of the table divided by its grand total.
type Result struct {
	Axes         []Axis
	TotalInertia float64
	RowLabels    []string
	ColLabels    []string
}

// Dim returns the number of retained axes.
func (r *Result) Dim() int { return len(r.Axes) }
