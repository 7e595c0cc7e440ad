// SPDX-License-Identifier: MIT

package contab_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolokh/crosstab/contab"
)

const epsTight = 1e-12

func TestMasses_SumToOne(t *testing.T) {
	t.Parallel()

	tab := newSmallTable(t)
	rowMass, colMass, err := contab.Masses(tab)
	require.NoError(t, err)

	var sum float64
	for _, m := range rowMass {
		assert.Positive(t, m)
		sum += m
	}
	assert.InDelta(t, 1.0, sum, epsTight, "row masses must sum to 1")

	sum = 0
	for _, m := range colMass {
		assert.Positive(t, m)
		sum += m
	}
	assert.InDelta(t, 1.0, sum, epsTight, "column masses must sum to 1")

	_, _, err = contab.Masses(nil)
	assert.ErrorIs(t, err, contab.ErrNilTable)
}

func TestExpected_MatchesOuterProduct(t *testing.T) {
	t.Parallel()

	tab := newSmallTable(t)
	exp, err := contab.Expected(tab)
	require.NoError(t, err)

	// E[i,j] = rowSum(i)*colSum(j)/N; margins of E equal margins of O.
	assert.Equal(t, tab.RowSums(), exp.RowSums())
	assert.Equal(t, tab.ColSums(), exp.ColSums())
	assert.Equal(t, tab.GrandTotal(), exp.GrandTotal())

	v, err := exp.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 60.0*40.0/120.0, v, epsTight)
}

func TestChiResiduals_SumOfSquaresIsChiSquared(t *testing.T) {
	t.Parallel()

	tab := newSmallTable(t)
	res, err := contab.ChiResiduals(tab)
	require.NoError(t, err)

	// Recompute χ² by hand: Σ (O-E)²/E.
	exp, err := contab.Expected(tab)
	require.NoError(t, err)
	var want float64
	for i := 0; i < tab.Rows(); i++ {
		for j := 0; j < tab.Cols(); j++ {
			o, errO := tab.At(i, j)
			require.NoError(t, errO)
			e, errE := exp.At(i, j)
			require.NoError(t, errE)
			want += (o - e) * (o - e) / e
		}
	}
	assert.InDelta(t, want, res.SumOfSquares(), 1e-9)
}

func TestCAResiduals_ScalesFromChiResiduals(t *testing.T) {
	t.Parallel()

	// The two conventions differ by exactly √N cell-by-cell.
	tab := newSmallTable(t)
	caRes, err := contab.CAResiduals(tab)
	require.NoError(t, err)
	chiRes, err := contab.ChiResiduals(tab)
	require.NoError(t, err)

	sqrtN := math.Sqrt(tab.GrandTotal())
	for i := 0; i < tab.Rows(); i++ {
		for j := 0; j < tab.Cols(); j++ {
			cav, errA := caRes.At(i, j)
			require.NoError(t, errA)
			chv, errC := chiRes.At(i, j)
			require.NoError(t, errC)
			assert.InDelta(t, chv/sqrtN, cav, epsTight, "cell (%d,%d)", i, j)
		}
	}

	// Consequently inertia = χ²/N.
	assert.InDelta(t, chiRes.SumOfSquares()/tab.GrandTotal(), caRes.SumOfSquares(), epsTight)
}

func TestCAResiduals_ScaleInvariance(t *testing.T) {
	t.Parallel()

	tab := newSmallTable(t)
	scaled, err := tab.Scale(7)
	require.NoError(t, err)

	orig, err := contab.CAResiduals(tab)
	require.NoError(t, err)
	scal, err := contab.CAResiduals(scaled)
	require.NoError(t, err)

	for i := 0; i < tab.Rows(); i++ {
		for j := 0; j < tab.Cols(); j++ {
			a, errA := orig.At(i, j)
			require.NoError(t, errA)
			b, errB := scal.At(i, j)
			require.NoError(t, errB)
			assert.InDelta(t, a, b, epsTight, "CA residuals are scale invariant")
		}
	}
}

func TestResiduals_AtOutOfRange(t *testing.T) {
	t.Parallel()

	res, err := contab.ChiResiduals(newSmallTable(t))
	require.NoError(t, err)
	_, err = res.At(5, 0)
	assert.ErrorIs(t, err, contab.ErrOutOfRange)
}
