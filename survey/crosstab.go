// Package survey: cross-tabulation of recoded observations.

package survey

import (
	"fmt"

	"github.com/avolokh/crosstab/contab"
)

// Crosstab counts observations into a contingency table whose row and column
// order follow the declared category sets.
//
// Every observation must already be a member of both sets (run Rules.Apply
// first); a stray label is ErrUnknownCategory, never a silent drop. The
// resulting table is validated by contab.New, so a category set with zero
// observed members surfaces as contab.ErrDegenerateInput — the signal to
// re-filter the input, not to shrink the table quietly.
//
// Complexity: O(observations + R·C).
func Crosstab(obs []Observation, rowSet, colSet *CategorySet) (*contab.Table, error) {
	if len(obs) == 0 {
		return nil, fmt.Errorf("Crosstab: %w", ErrEmptyInput)
	}

	counts := make([][]float64, rowSet.Len())
	for i := range counts {
		counts[i] = make([]float64, colSet.Len())
	}

	for n, o := range obs {
		i, err := rowSet.Index(o.Row)
		if err != nil {
			return nil, fmt.Errorf("Crosstab: record %d: %w", n, err)
		}
		j, err := colSet.Index(o.Col)
		if err != nil {
			return nil, fmt.Errorf("Crosstab: record %d: %w", n, err)
		}
		counts[i][j]++
	}

	tab, err := contab.New(rowSet.Labels(), colSet.Labels(), counts)
	if err != nil {
		return nil, fmt.Errorf("Crosstab: %w", err)
	}

	return tab, nil
}
