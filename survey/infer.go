// Package survey: category inference for rule-less runs.

package survey

import "fmt"

// InferCategorySets derives row and column category sets from the
// observations themselves, in order of first appearance. Use it when no
// recode rules exist yet — every observed label becomes its own category,
// so nothing is merged and nothing is discarded.
//
// Complexity: O(observations).
func InferCategorySets(obs []Observation, rowVar, colVar string) (row, col *CategorySet, err error) {
	if len(obs) == 0 {
		return nil, nil, fmt.Errorf("InferCategorySets: %w", ErrEmptyInput)
	}

	rowLabels := firstSeen(obs, func(o Observation) string { return o.Row })
	colLabels := firstSeen(obs, func(o Observation) string { return o.Col })

	row, err = NewCategorySet(rowVar, rowLabels)
	if err != nil {
		return nil, nil, fmt.Errorf("InferCategorySets: %w", err)
	}
	col, err = NewCategorySet(colVar, colLabels)
	if err != nil {
		return nil, nil, fmt.Errorf("InferCategorySets: %w", err)
	}

	return row, col, nil
}

// firstSeen collects distinct labels preserving first-appearance order.
func firstSeen(obs []Observation, pick func(Observation) string) []string {
	seen := make(map[string]struct{}, len(obs))
	var out []string
	for _, o := range obs {
		l := pick(o)
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	return out
}
