// SPDX-License-Identifier: MIT

package survey_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolokh/crosstab/contab"
	"github.com/avolokh/crosstab/survey"
)

const sampleCSV = `id,employment,education,age
1,Private firm,University,34
2,Self-employed,No schooling,51
3,Private firm,Vocational,29
4,Self-employed,Primary school,44
5,Private firm,University,38
6,Self-employed,Vocational,47
7,Private firm,Primary school,31
8,Self-employed,University,55
9,Private firm, University ,40
10,Self-employed,,60
`

const sampleRules = `
row:
  variable: employment
  categories: [Private firm, Self-employed]
col:
  variable: education
  categories: [Primary, Secondary, Tertiary]
  map:
    "No schooling": Primary
    "Primary school": Primary
    "Vocational": Secondary
    "University": Tertiary
`

func TestLoadCSV_ExtractsAndSkipsBlanks(t *testing.T) {
	t.Parallel()

	obs, err := survey.LoadCSV(strings.NewReader(sampleCSV), "employment", "education")
	require.NoError(t, err)

	// Record 10 has a blank education cell and is skipped.
	require.Len(t, obs, 9)
	assert.Equal(t, survey.Observation{Row: "Private firm", Col: "University"}, obs[0])
	// Whitespace around cells is trimmed (record 9).
	assert.Equal(t, survey.Observation{Row: "Private firm", Col: "University"}, obs[8])
}

func TestLoadCSV_Errors(t *testing.T) {
	t.Parallel()

	_, err := survey.LoadCSV(strings.NewReader(""), "a", "b")
	assert.ErrorIs(t, err, survey.ErrEmptyInput, "no header")

	_, err = survey.LoadCSV(strings.NewReader("x,y\n"), "x", "y")
	assert.ErrorIs(t, err, survey.ErrEmptyInput, "header only")

	_, err = survey.LoadCSV(strings.NewReader(sampleCSV), "employment", "nope")
	assert.ErrorIs(t, err, survey.ErrMissingColumn)
}

func TestParseRules_Validation(t *testing.T) {
	t.Parallel()

	rules, err := survey.ParseRules([]byte(sampleRules))
	require.NoError(t, err)
	assert.Equal(t, "employment", rules.Row.Variable)
	assert.Equal(t, []string{"Primary", "Secondary", "Tertiary"}, rules.Col.Categories)

	// Map target must be a declared category.
	_, err = survey.ParseRules([]byte(`
row: {variable: v, categories: [a]}
col:
  variable: w
  categories: [x]
  map: {"raw": "unknown-target"}
`))
	assert.ErrorIs(t, err, survey.ErrBadRules)

	// Empty category list.
	_, err = survey.ParseRules([]byte(`
row: {variable: v, categories: []}
col: {variable: w, categories: [x]}
`))
	assert.ErrorIs(t, err, survey.ErrBadRules)

	// A label cannot be both mapped and discarded.
	_, err = survey.ParseRules([]byte(`
row: {variable: v, categories: [a], map: {"r": "a"}, discard: [r]}
col: {variable: w, categories: [x]}
`))
	assert.ErrorIs(t, err, survey.ErrBadRules)
}

func TestApply_RecodesMergesAndDiscards(t *testing.T) {
	t.Parallel()

	rules, err := survey.ParseRules([]byte(`
row:
  variable: employment
  categories: [Private firm, Self-employed]
  discard: [Refused]
col:
  variable: education
  categories: [Primary, Tertiary]
  map:
    "No schooling": Primary
    "University": Tertiary
`))
	require.NoError(t, err)

	obs := []survey.Observation{
		{Row: "Private firm", Col: "University"},   // mapped
		{Row: "Self-employed", Col: "Primary"},     // identity pass-through
		{Row: "Refused", Col: "University"},        // discarded row label
		{Row: "Private firm", Col: "No schooling"}, // mapped
	}

	got, err := rules.Apply(obs)
	require.NoError(t, err)
	assert.Equal(t, []survey.Observation{
		{Row: "Private firm", Col: "Tertiary"},
		{Row: "Self-employed", Col: "Primary"},
		{Row: "Private firm", Col: "Primary"},
	}, got)
}

func TestApply_UnknownCategoryRejected(t *testing.T) {
	t.Parallel()

	rules, err := survey.ParseRules([]byte(sampleRules))
	require.NoError(t, err)

	_, err = rules.Apply([]survey.Observation{
		{Row: "Private firm", Col: "Night school"}, // not mapped, not a category
	})
	assert.ErrorIs(t, err, survey.ErrUnknownCategory,
		"unrecognized labels must be rejected, not passed through")
}

func TestCategorySet_OrderAndMembership(t *testing.T) {
	t.Parallel()

	set, err := survey.NewCategorySet("education", []string{"Primary", "Secondary", "Tertiary"})
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains("Secondary"))

	i, err := set.Index("Tertiary")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = set.Index("PhD")
	assert.ErrorIs(t, err, survey.ErrUnknownCategory)

	_, err = survey.NewCategorySet("x", []string{"a", "a"})
	assert.ErrorIs(t, err, survey.ErrDuplicateCategory)

	_, err = survey.NewCategorySet("x", nil)
	assert.ErrorIs(t, err, survey.ErrEmptyInput)
}

func TestCrosstab_EndToEnd(t *testing.T) {
	t.Parallel()

	obs, err := survey.LoadCSV(strings.NewReader(sampleCSV), "employment", "education")
	require.NoError(t, err)

	rules, err := survey.ParseRules([]byte(sampleRules))
	require.NoError(t, err)

	recoded, err := rules.Apply(obs)
	require.NoError(t, err)

	rowSet, colSet, err := rules.CategorySets()
	require.NoError(t, err)

	tab, err := survey.Crosstab(recoded, rowSet, colSet)
	require.NoError(t, err)

	assert.Equal(t, []string{"Private firm", "Self-employed"}, tab.RowLabels())
	assert.Equal(t, []string{"Primary", "Secondary", "Tertiary"}, tab.ColLabels())
	assert.Equal(t, 9.0, tab.GrandTotal())

	// Private firm: 1×Primary, 1×Secondary, 3×Tertiary.
	for j, want := range []float64{1, 1, 3} {
		v, errAt := tab.At(0, j)
		require.NoError(t, errAt)
		assert.Equal(t, want, v, "Private firm col %d", j)
	}
	// Self-employed: 2×Primary, 1×Secondary, 1×Tertiary.
	for j, want := range []float64{2, 1, 1} {
		v, errAt := tab.At(1, j)
		require.NoError(t, errAt)
		assert.Equal(t, want, v, "Self-employed col %d", j)
	}
}

func TestInferCategorySets_FirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	obs := []survey.Observation{
		{Row: "b", Col: "y"},
		{Row: "a", Col: "x"},
		{Row: "b", Col: "x"},
		{Row: "a", Col: "z"},
	}

	rowSet, colSet, err := survey.InferCategorySets(obs, "r", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, rowSet.Labels())
	assert.Equal(t, []string{"y", "x", "z"}, colSet.Labels())
	assert.Equal(t, "r", rowSet.Name())

	_, _, err = survey.InferCategorySets(nil, "r", "c")
	assert.ErrorIs(t, err, survey.ErrEmptyInput)
}

func TestCrosstab_StrayLabelAndDegeneracy(t *testing.T) {
	t.Parallel()

	rowSet, err := survey.NewCategorySet("r", []string{"a", "b"})
	require.NoError(t, err)
	colSet, err := survey.NewCategorySet("c", []string{"x", "y"})
	require.NoError(t, err)

	_, err = survey.Crosstab([]survey.Observation{{Row: "zzz", Col: "x"}}, rowSet, colSet)
	assert.ErrorIs(t, err, survey.ErrUnknownCategory)

	// Category "b" declared but never observed → degenerate zero row.
	_, err = survey.Crosstab([]survey.Observation{
		{Row: "a", Col: "x"},
		{Row: "a", Col: "y"},
	}, rowSet, colSet)
	assert.ErrorIs(t, err, contab.ErrDegenerateInput)

	_, err = survey.Crosstab(nil, rowSet, colSet)
	assert.ErrorIs(t, err, survey.ErrEmptyInput)
}
