package chisq

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/avolokh/crosstab/contab"
)

// opTest tags wrapped errors originating from Test.
const opTest = "Test"

// TestResult carries the outcome of one independence test.
//
// Fields:
//   - Statistic — Pearson χ² = Σ (O−E)²/E.
//   - DF        — degrees of freedom, (R−1)(C−1).
//   - PValue    — upper-tail probability of χ²_DF exceeding Statistic.
//   - Residuals — chi-squared standardized residuals (O−E)/√E for cell-level
//     inspection; |value| ≳ 2 flags a noteworthy deviation.
type TestResult struct {
	Statistic float64
	DF        int
	PValue    float64
	Residuals *contab.Residuals
}

// SignificantAt reports whether the association is significant at level
// alpha (e.g. 0.05). The threshold choice is caller policy.
func (r *TestResult) SignificantAt(alpha float64) bool {
	return r.PValue < alpha
}

// Test runs Pearson's chi-squared test of independence on t.
// Stage 1 (Validate): the table must be non-nil and at least 2×2; smaller
// shapes have zero degrees of freedom and are rejected with
// contab.ErrDegenerateInput.
// Stage 2 (Execute): the statistic is the sum of squared chi-squared
// residuals, reusing the contab kernel; the p-value comes from the
// chi-squared survival function with (R−1)(C−1) degrees of freedom.
// Complexity: O(r*c).
func Test(t *contab.Table) (*TestResult, error) {
	if err := contab.ValidateForAnalysis(t); err != nil {
		return nil, fmt.Errorf("%s: %w", opTest, err)
	}

	resid, err := contab.ChiResiduals(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTest, err)
	}

	df := (t.Rows() - 1) * (t.Cols() - 1)
	stat := resid.SumOfSquares()
	dist := distuv.ChiSquared{K: float64(df)}

	return &TestResult{
		Statistic: stat,
		DF:        df,
		PValue:    dist.Survival(stat),
		Residuals: resid,
	}, nil
}
