// Package contab provides immutable contingency tables for two categorical
// variables and the marginal quantities derived from them.
//
// The contab package provides:
//
//   - Table: an R×C cross-tabulation of non-negative counts with named
//     row and column categories, stored row-major in a flat slice.
//   - Masses: marginal probabilities of rows and columns (sums / grand total).
//   - Expected: the independence table rᵢ·cⱼ·N with the same labels.
//   - Residuals: standardized deviations from independence in two documented
//     conventions — chi-squared style (O−E)/√E and correspondence-analysis
//     style (P−rc)/√(rc). The two differ by a factor of √N and are never
//     mixed inside one computation.
//
// Tables are validated at construction: counts must be finite and
// non-negative, the grand total positive, and no row or column may be
// entirely zero. Degenerate inputs are rejected with ErrDegenerateInput
// rather than silently dropped, since dropping a category would change the
// mass normalization of every other row and column.
//
// All derived values are pure functions of the table; nothing is mutated in
// place. See the examples in this package and ca for usage patterns.
package contab
