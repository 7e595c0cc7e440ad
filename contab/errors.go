// SPDX-License-Identifier: MIT
// Package contab: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the contab
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package contab

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "contab: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or when the counts grid is ragged.
	ErrBadShape = errors.New("contab: invalid shape")

	// ErrDimensionMismatch indicates that label slices and the counts grid
	// disagree on dimensions, or a permutation has the wrong length.
	ErrDimensionMismatch = errors.New("contab: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("contab: index out of range")

	// ErrNegativeCount signals a cell value below zero at ingestion.
	ErrNegativeCount = errors.New("contab: negative count")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("contab: NaN or Inf encountered")

	// ErrDegenerateInput marks a table that cannot support an association
	// analysis: fewer than 2 rows or 2 columns, a zero grand total, or an
	// entirely-zero row or column. Degenerate categories must be re-filtered
	// by the caller before retrying; they are never dropped silently.
	ErrDegenerateInput = errors.New("contab: degenerate input")

	// ErrDuplicateLabel indicates a repeated category label within one
	// variable. Labels index rows and columns and must be unique.
	ErrDuplicateLabel = errors.New("contab: duplicate label")

	// ErrNilTable indicates that a nil *Table was passed where a value is
	// required.
	ErrNilTable = errors.New("contab: nil table")

	// ErrBadPermutation indicates a permutation slice that is not a bijection
	// over the index range (wrong length, repeated or out-of-range entries).
	ErrBadPermutation = errors.New("contab: invalid permutation")

	// ErrBadScale indicates a scaling factor that is not strictly positive
	// and finite.
	ErrBadScale = errors.New("contab: scale factor must be positive and finite")
)
