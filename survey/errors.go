// SPDX-License-Identifier: MIT
// Package survey: sentinel error set. Tests match via errors.Is.

package survey

import "errors"

var (
	// ErrUnknownCategory indicates a raw label that the recode rules neither
	// map, pass through, nor explicitly discard. Unrecognized categories are
	// rejected at the boundary, never forwarded.
	ErrUnknownCategory = errors.New("survey: unknown category")

	// ErrMissingColumn indicates that a requested variable is not present in
	// the CSV header.
	ErrMissingColumn = errors.New("survey: column not found in header")

	// ErrEmptyInput indicates a CSV with no header or no data rows, or an
	// observation list with nothing to tabulate.
	ErrEmptyInput = errors.New("survey: empty input")

	// ErrBadRules indicates a structurally invalid recode specification:
	// empty category list, duplicate categories, or a mapping target that is
	// not a declared category.
	ErrBadRules = errors.New("survey: invalid recode rules")

	// ErrDuplicateCategory indicates a repeated label inside one CategorySet.
	ErrDuplicateCategory = errors.New("survey: duplicate category")
)
