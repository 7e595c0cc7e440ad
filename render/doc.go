// Package render draws the report figures for a contingency-table analysis:
//
//   - MarginalBars — grouped bar chart of observed counts, one bar group per
//     column category, one colored series per row category.
//   - RowTotalsBars / ColTotalsBars — one variable's marginal totals as a
//     single bar series.
//   - Biplot       — correspondence-analysis map: row and column categories
//     plotted together in principal coordinates on the first two axes, each
//     axis labeled with its share of the total inertia.
//
// Output format follows the file extension understood by gonum/plot's
// Save (".png", ".svg", ".pdf", ...). Figures are deterministic for a
// given input: category order fixes bar order, series color and glyph
// assignment.
//
// The package renders; it never recomputes. Feed it the contab.Table and
// ca.Result you already validated.
package render
