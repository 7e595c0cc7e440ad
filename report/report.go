// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/avolokh/crosstab/ca"
	"github.com/avolokh/crosstab/chisq"
	"github.com/avolokh/crosstab/contab"
)

// DefaultAlpha is the significance level used when the caller passes 0.
const DefaultAlpha = 0.05

// residualBand is the conventional |residual| threshold beyond which a cell
// is flagged as over- or under-represented in the text report.
const residualBand = 2.0

// Report bundles every artifact of one table's analysis.
type Report struct {
	Table     *contab.Table
	Expected  *contab.Table
	Residuals *contab.Residuals // chi-style standardized residuals
	Chi       *chisq.TestResult
	CA        *ca.Result
	Alpha     float64
}

// Build runs the full analysis on t at significance level alpha (0 selects
// DefaultAlpha) and returns the assembled report. Analysis options are
// forwarded to ca.Analyze.
//
// Stage 1 (Validate): the table must pass contab.ValidateForAnalysis and
// alpha must lie in (0, 1).
// Stage 2 (Compute): expected counts, chi-squared test, correspondence
// analysis — each on the same validated table.
//
// Complexity: dominated by the decomposition, O(min(R,C)·R·C).
func Build(t *contab.Table, alpha float64, opts ...ca.Option) (*Report, error) {
	if err := contab.ValidateForAnalysis(t); err != nil {
		return nil, fmt.Errorf("report.Build: %w", err)
	}
	if alpha == 0 {
		alpha = DefaultAlpha
	}
	if alpha <= 0 || alpha >= 1 {
		return nil, fmt.Errorf("report.Build: %v: %w", alpha, ErrBadAlpha)
	}

	expected, err := contab.Expected(t)
	if err != nil {
		return nil, fmt.Errorf("report.Build: %w", err)
	}
	chi, err := chisq.Test(t)
	if err != nil {
		return nil, fmt.Errorf("report.Build: %w", err)
	}
	res, err := ca.Analyze(t, opts...)
	if err != nil {
		return nil, fmt.Errorf("report.Build: %w", err)
	}

	return &Report{
		Table:     t,
		Expected:  expected,
		Residuals: chi.Residuals,
		Chi:       chi,
		CA:        res,
		Alpha:     alpha,
	}, nil
}

// Significant reports whether independence is rejected at the report's
// significance level.
func (r *Report) Significant() bool {
	return r.Chi.SignificantAt(r.Alpha)
}
