package chisq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolokh/crosstab/chisq"
	"github.com/avolokh/crosstab/contab"
)

func newAssocTable(t *testing.T) *contab.Table {
	t.Helper()
	tab, err := contab.New(
		[]string{"Public sector", "Self-employed"},
		[]string{"Primary", "Tertiary"},
		[][]float64{
			{10, 90},
			{70, 30},
		},
	)
	require.NoError(t, err)

	return tab
}

func TestTest_KnownTwoByTwo(t *testing.T) {
	t.Parallel()

	// For a 2×2 table χ² has the closed form N(ad−bc)²/((a+b)(c+d)(a+c)(b+d)).
	tab := newAssocTable(t)
	res, err := chisq.Test(tab)
	require.NoError(t, err)

	n := 200.0
	want := n * (10*30 - 90*70) * (10*30 - 90*70) / (100 * 100 * 80 * 120)
	assert.InDelta(t, want, res.Statistic, 1e-9)
	assert.Equal(t, 1, res.DF)
	assert.Less(t, res.PValue, 1e-6, "a strong association has a tiny p-value")
	assert.True(t, res.SignificantAt(0.05))
}

func TestTest_IndependentTableIsInsignificant(t *testing.T) {
	t.Parallel()

	// Perfectly proportional rows: expected == observed, χ² == 0, p == 1.
	tab, err := contab.New(
		[]string{"a", "b"},
		[]string{"x", "y"},
		[][]float64{
			{20, 40},
			{10, 20},
		},
	)
	require.NoError(t, err)

	res, err := chisq.Test(tab)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Statistic, 1e-12)
	assert.InDelta(t, 1.0, res.PValue, 1e-12)
	assert.False(t, res.SignificantAt(0.05))
}

func TestTest_DegreesOfFreedom(t *testing.T) {
	t.Parallel()

	tab, err := contab.New(
		[]string{"r1", "r2", "r3", "r4", "r5"},
		[]string{"c1", "c2", "c3"},
		[][]float64{
			{10, 40, 80},
			{5, 30, 100},
			{40, 60, 20},
			{30, 50, 40},
			{60, 40, 10},
		},
	)
	require.NoError(t, err)

	res, err := chisq.Test(tab)
	require.NoError(t, err)
	assert.Equal(t, (5-1)*(3-1), res.DF)
	assert.NotNil(t, res.Residuals)
	assert.InDelta(t, res.Statistic, res.Residuals.SumOfSquares(), 1e-12)
}

func TestTest_DegenerateInput(t *testing.T) {
	t.Parallel()

	_, err := chisq.Test(nil)
	assert.ErrorIs(t, err, contab.ErrNilTable)

	tab, err := contab.New([]string{"only"}, []string{"x", "y"}, [][]float64{{3, 4}})
	require.NoError(t, err)
	_, err = chisq.Test(tab)
	assert.ErrorIs(t, err, contab.ErrDegenerateInput, "1×2 table has zero degrees of freedom")
}
