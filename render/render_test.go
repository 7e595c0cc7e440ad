// SPDX-License-Identifier: MIT

package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolokh/crosstab/ca"
	"github.com/avolokh/crosstab/contab"
	"github.com/avolokh/crosstab/render"
)

// newFixtureTable builds the 5x3 employment-by-education table used across
// the analysis tests.
func newFixtureTable(t *testing.T) *contab.Table {
	t.Helper()

	tab, err := contab.New(
		[]string{
			"Central/local government",
			"Public sector Edu&Health",
			"State-owned enterprise",
			"Private firm",
			"Self-employed",
		},
		[]string{"Primary", "Secondary", "Tertiary"},
		[][]float64{
			{10, 40, 80},
			{5, 30, 100},
			{40, 60, 20},
			{30, 50, 40},
			{60, 40, 10},
		},
	)
	require.NoError(t, err)

	return tab
}

func TestMarginalBars_WritesFile(t *testing.T) {
	t.Parallel()

	tab := newFixtureTable(t)
	path := filepath.Join(t.TempDir(), "counts.png")

	require.NoError(t, render.MarginalBars(tab, "Observed counts", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "saved chart must not be empty")
}

func TestMarginalBars_Errors(t *testing.T) {
	t.Parallel()

	tab := newFixtureTable(t)

	err := render.MarginalBars(nil, "t", filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, render.ErrNilInput)

	err = render.MarginalBars(tab, "t", "")
	assert.ErrorIs(t, err, render.ErrEmptyPath)
}

func TestTotalsBars_WriteFiles(t *testing.T) {
	t.Parallel()

	tab := newFixtureTable(t)
	dir := t.TempDir()

	rowPath := filepath.Join(dir, "rows.png")
	require.NoError(t, render.RowTotalsBars(tab, "Employment totals", rowPath))
	colPath := filepath.Join(dir, "cols.png")
	require.NoError(t, render.ColTotalsBars(tab, "Education totals", colPath))

	for _, p := range []string{rowPath, colPath} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	assert.ErrorIs(t, render.RowTotalsBars(nil, "t", rowPath), render.ErrNilInput)
	assert.ErrorIs(t, render.ColTotalsBars(tab, "t", ""), render.ErrEmptyPath)
}

func TestBiplot_WritesFile(t *testing.T) {
	t.Parallel()

	res, err := ca.Analyze(newFixtureTable(t))
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Dim(), 2)

	path := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, render.Biplot(res, "Correspondence map", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestBiplot_SingleAxisStillRenders(t *testing.T) {
	t.Parallel()

	// Proportional rows collapse the decomposition to one retained axis.
	tab, err := contab.New(
		[]string{"a", "b", "c"},
		[]string{"x", "y", "z"},
		[][]float64{
			{10, 20, 30},
			{20, 40, 60},
			{30, 10, 5},
		},
	)
	require.NoError(t, err)

	res, err := ca.Analyze(tab)
	require.NoError(t, err)
	require.Equal(t, 1, res.Dim())

	path := filepath.Join(t.TempDir(), "map1d.png")
	require.NoError(t, render.Biplot(res, "One axis", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestBiplot_Errors(t *testing.T) {
	t.Parallel()

	res, err := ca.Analyze(newFixtureTable(t))
	require.NoError(t, err)

	assert.ErrorIs(t, render.Biplot(nil, "t", "x.png"), render.ErrNilInput)
	assert.ErrorIs(t, render.Biplot(res, "t", ""), render.ErrEmptyPath)

	empty := &ca.Result{
		RowLabels: res.RowLabels,
		ColLabels: res.ColLabels,
	}
	err = render.Biplot(empty, "t", filepath.Join(t.TempDir(), "none.png"))
	assert.ErrorIs(t, err, render.ErrNoAxes)
}
