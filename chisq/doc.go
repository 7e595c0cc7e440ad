// Package chisq implements Pearson's chi-squared test of independence for a
// two-way contingency table.
//
// The statistic is Σ (O−E)²/E over all cells, with E the expected counts
// under independence and (R−1)(C−1) degrees of freedom. The p-value is the
// upper tail of the chi-squared distribution with that many degrees of
// freedom. Whether a given p-value is "significant" is caller policy — the
// package reports numbers, not verdicts.
//
// The chi-squared statistic divided by the grand total N equals the total
// inertia of the correspondence analysis of the same table (see package ca);
// the two packages share the contab residual kernels, so the identity holds
// exactly up to floating-point rounding.
package chisq
