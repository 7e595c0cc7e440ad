package ca

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/avolokh/crosstab/contab"
)

// ErrDecomposition indicates that the singular value decomposition did
// not converge. Finite, validated inputs should never trigger it.
var ErrDecomposition = errors.New("ca: svd factorization failed")

// opAnalyze tags wrapped errors originating from Analyze.
const opAnalyze = "Analyze"

// percentScale converts an inertia fraction into a percentage.
const percentScale = 100.0

// Analyze — simple Correspondence Analysis
//
// Description:
//
//	Analyze maps the association structure of a contingency table onto a
//	small number of orthogonal axes. Rows and columns receive principal
//	coordinates such that chi-squared distances between category profiles
//	become ordinary Euclidean distances in the map.
//
// Algorithm Outline:
//  1. Validate the table: non-nil and at least 2×2 (zero margins are already
//     impossible by contab construction). Fail with contab.ErrDegenerateInput
//     otherwise; degenerate categories are rejected, never dropped, because
//     dropping would re-normalize every other mass.
//  2. Compute row masses rᵢ and column masses cⱼ, and the standardized
//     residual matrix S[i,j] = (P[i,j] − rᵢcⱼ)/√(rᵢcⱼ) with P = table/N.
//  3. Thin SVD: S = U·Σ·Vᵀ. Squared singular values σₖ² are the axis
//     inertias, already ordered descending by the decomposition; at most
//     min(R,C)−1 of them are non-trivial (one dimension is absorbed by the
//     masses).
//  4. Principal coordinates per axis k:
//     Fᵢₖ = Uᵢₖ·σₖ/√rᵢ (rows),  Gⱼₖ = Vⱼₖ·σₖ/√cⱼ (columns).
//  5. TotalInertia = Σσₖ² (= χ²/N). Axes whose inertia falls at or below
//     rankTolerance × TotalInertia are dropped as rank-deficiency noise, so
//     the result may carry fewer axes than min(R,C)−1, but never NaN.
//
// Determinism:
//
//	For identical input the decomposition, axis order and coordinate signs
//	are stable. Sign convention is shared between the row and column vectors
//	of one axis (both come from the same singular pair).
//
// Errors:
//   - contab.ErrNilTable / contab.ErrDegenerateInput — table is nil or
//     smaller than 2×2.
//   - ErrDecomposition — the SVD failed to converge (not expected for
//     finite inputs of this size).
//
// Complexity: O(R·C·min(R,C)) time, O(R·C) space — trivial for survey-sized
// category counts.
//
// Example:
//
//	res, err := ca.Analyze(tab, ca.WithMaxAxes(2))
func Analyze(t *contab.Table, opts ...Option) (*Result, error) {
	// Stage 1 (Validate): shape gate; nil and <2×2 are degenerate.
	if err := contab.ValidateForAnalysis(t); err != nil {
		return nil, caErrorf(opAnalyze, err)
	}
	cfg := gatherOptions(opts...)

	// Stage 2 (Prepare): masses and the CA residual matrix.
	rowMass, colMass, err := contab.Masses(t)
	if err != nil {
		return nil, caErrorf(opAnalyze, err)
	}
	resid, err := contab.CAResiduals(t)
	if err != nil {
		return nil, caErrorf(opAnalyze, err)
	}

	r, c := t.Rows(), t.Cols()
	s := mat.NewDense(r, c, nil)
	var i, j int
	var v float64
	for i = 0; i < r; i++ { // fixed i→j order
		for j = 0; j < c; j++ {
			v, err = resid.At(i, j)
			if err != nil {
				return nil, caErrorf(opAnalyze, err)
			}
			s.Set(i, j, v)
		}
	}

	// Stage 3 (Decompose): thin SVD of the residual matrix.
	var svd mat.SVD
	if ok := svd.Factorize(s, mat.SVDThin); !ok {
		return nil, caErrorf(opAnalyze, ErrDecomposition)
	}
	sigma := svd.Values(nil)
	var um, vm mat.Dense // U is R×min(R,C), V is C×min(R,C)
	svd.UTo(&um)
	svd.VTo(&vm)

	// Stage 4 (Inertia): total inertia sums every σ², including axes that
	// will be dropped below; the trivial dimension contributes ~0.
	var total float64
	for _, sv := range sigma {
		total += sv * sv
	}

	// Stage 5 (Axes): build principal coordinates for each retained axis.
	maxAxes := minInt(r, c) - 1 // one dimension is absorbed by the masses
	if cfg.maxAxes > 0 && cfg.maxAxes < maxAxes {
		maxAxes = cfg.maxAxes
	}
	cutoff := cfg.rankTol * total

	out := &Result{
		TotalInertia: total,
		RowLabels:    t.RowLabels(),
		ColLabels:    t.ColLabels(),
	}
	var k int
	var ev float64
	for k = 0; k < maxAxes && k < len(sigma); k++ {
		ev = sigma[k] * sigma[k]
		if ev <= cutoff {
			break // singular values are descending; the rest are noise
		}
		axis := Axis{
			Inertia:   ev,
			RowCoords: make([]float64, r),
			ColCoords: make([]float64, c),
		}
		if total > 0 {
			axis.Percent = ev / total * percentScale
		}
		for i = 0; i < r; i++ {
			axis.RowCoords[i] = um.At(i, k) * sigma[k] / math.Sqrt(rowMass[i])
		}
		for j = 0; j < c; j++ {
			axis.ColCoords[j] = vm.At(j, k) * sigma[k] / math.Sqrt(colMass[j])
		}
		out.Axes = append(out.Axes, axis)
	}

	return out, nil
}

// caErrorf wraps err with an operation tag, preserving sentinels for errors.Is.
func caErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
