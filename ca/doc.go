// Package ca implements simple correspondence analysis (CA) of a two-way
// contingency table.
//
// CA decomposes the standardized residual matrix of a table into orthogonal
// axes, producing a low-dimensional map in which row and column categories
// that deviate from independence in the same direction land close together.
// The decomposition is a singular value decomposition of
//
//	S[i,j] = (P[i,j] − rᵢ·cⱼ) / √(rᵢ·cⱼ),  P = table / N,
//
// where rᵢ and cⱼ are the row and column masses. Squared singular values are
// the per-axis inertias; their sum — the total inertia — equals the Pearson
// χ² statistic divided by N. Principal coordinates rescale the singular
// vectors by the masses so distances in the map are chi-squared distances.
//
// Degenerate tables (fewer than 2 rows or columns, zero margins) are
// rejected with contab.ErrDegenerateInput before any decomposition; rank
// deficiency yields fewer axes, never NaN coordinates.
package ca
