// SPDX-License-Identifier: MIT
// Package contab: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for the structural checks shared by
//     Table construction and the analysis entry points downstream (ca, chisq).
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing beyond the
//     label-uniqueness set.

package contab

import (
	"fmt"
	"math"
)

// MinAnalyzableDim is the smallest row/column count for which an association
// analysis yields a non-trivial axis: CA needs at least a 2×2 table.
const MinAnalyzableDim = 2

// ValidateNotNil ensures the table reference is non-nil.
// Returns ErrNilTable otherwise. Complexity: O(1).
func ValidateNotNil(t *Table) error {
	if t == nil {
		return ErrNilTable
	}

	return nil
}

// ValidateForAnalysis is the composite gate used by analysis entry points:
// NotNil → at least MinAnalyzableDim rows and columns. Marginal positivity is
// already guaranteed by construction, so a non-nil *Table only needs the
// shape check here. Complexity: O(1).
func ValidateForAnalysis(t *Table) error {
	if err := ValidateNotNil(t); err != nil {
		return err
	}
	if t.r < MinAnalyzableDim || t.c < MinAnalyzableDim {
		return fmt.Errorf("need at least %dx%d table: %w", MinAnalyzableDim, MinAnalyzableDim, ErrDegenerateInput)
	}

	return nil
}

// validateLabels checks both label slices: non-empty and unique per variable.
func validateLabels(rowLabels, colLabels []string) error {
	if len(rowLabels) == 0 || len(colLabels) == 0 {
		return ErrBadShape
	}
	if err := validateUnique(rowLabels); err != nil {
		return fmt.Errorf("row labels: %w", err)
	}
	if err := validateUnique(colLabels); err != nil {
		return fmt.Errorf("column labels: %w", err)
	}

	return nil
}

// validateUnique rejects repeated labels within one variable.
func validateUnique(labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return fmt.Errorf("%q: %w", l, ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}

	return nil
}

// validateCount enforces the numeric policy for a single cell: finite and ≥ 0.
func validateCount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	if v < 0 {
		return ErrNegativeCount
	}

	return nil
}

// validateMarginals rejects tables whose margins would corrupt mass
// normalization: zero grand total, or an entirely-zero row or column.
// Deterministic scan order: rows first, then columns. Complexity: O(r+c).
func validateMarginals(t *Table) error {
	if t.total <= 0 {
		return fmt.Errorf("grand total is zero: %w", ErrDegenerateInput)
	}
	for i, s := range t.rowSums {
		if s == 0 {
			return fmt.Errorf("row %q has zero sum: %w", t.rowLabels[i], ErrDegenerateInput)
		}
	}
	for j, s := range t.colSums {
		if s == 0 {
			return fmt.Errorf("column %q has zero sum: %w", t.colLabels[j], ErrDegenerateInput)
		}
	}

	return nil
}

// validatePermutation checks that perm is a bijection over [0, n).
func validatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrBadPermutation
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return ErrBadPermutation
		}
		seen[p] = true
	}

	return nil
}

// validateScale enforces a strictly positive, finite scaling factor.
func validateScale(k float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return ErrNaNInf
	}
	if k <= 0 {
		return ErrBadScale
	}

	return nil
}
