// Package crosstab is a toolkit for analyzing the association between two
// categorical survey variables — from raw records to a correspondence map.
//
// 🚀 What is crosstab?
//
//	A small, deterministic library plus CLI that brings together:
//		• Contingency tables: immutable cross-tabulations with named categories
//		• Margins: row/column masses, expected counts under independence
//		• Residuals: chi-squared and correspondence-analysis conventions
//		• Chi-squared test: statistic, degrees of freedom, p-value
//		• Correspondence analysis: weighted SVD, principal coordinates, inertia
//		• Rendering: bar charts and CA biplots
//		• Reporting: plain-text and spreadsheet report export
//
// ✨ Why choose crosstab?
//
//   - Explicit pipelines – every stage is a pure function over an immutable table
//   - Fail-fast validation – degenerate and unknown inputs are rejected, never dropped
//   - Deterministic – fixed traversal orders, stable axis ordering, no global state
//
// Everything is organized under focused subpackages:
//
//	contab/ — contingency tables, masses, expected counts, residual matrices
//	ca/     — the correspondence-analysis engine (SVD, coordinates, inertia)
//	chisq/  — Pearson chi-squared test of independence
//	survey/ — ingestion boundary: CSV records, category sets, recode rules
//	render/ — gonum/plot bar charts and biplots
//	report/ — text and xlsx report assembly
//	cmd/    — the crosstab command-line interface
//
// Quick sketch:
//
//	records → recode → Table ──→ chisq.Test
//	                      └────→ ca.Analyze → render.Biplot
//
// Dive into the package examples for end-to-end usage.
package crosstab
