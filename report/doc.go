// Package report assembles the full analysis of one contingency table and
// writes it out as a plain-text summary or an Excel workbook.
//
// Build runs the whole pipeline on a validated table: marginal masses,
// expected counts, chi-squared test, correspondence analysis. The resulting
// Report is a plain data bundle; WriteText and SaveXLSX only format, they
// never recompute.
//
// The text report flags cells whose standardized residual exceeds the
// conventional ±2 band, so a reader can spot the over- and under-represented
// combinations without opening a spreadsheet. The workbook spreads the same
// numbers over one sheet per artifact (Counts, Expected, Residuals,
// ChiSquared, Axes, RowCoords, ColCoords).
package report
