// Package ca: functional configuration for the analyzer.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package ca

import "math"

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultRankTolerance is the relative eigenvalue cutoff below which an
	// axis is treated as numerical noise of a rank-deficient decomposition:
	// axes with σₖ² ≤ DefaultRankTolerance × TotalInertia are dropped.
	DefaultRankTolerance = 1e-12

	// DefaultMaxAxes (0) retains every non-trivial axis, up to min(R,C)−1.
	DefaultMaxAxes = 0
)

// options is the internal, gathered configuration state.
type options struct {
	rankTol float64 // relative eigenvalue cutoff, ≥ 0
	maxAxes int     // 0 = unlimited
}

// Option mutates the analyzer configuration.
type Option func(*options)

// WithRankTolerance overrides the relative eigenvalue cutoff used to detect
// rank deficiency. tol must be ≥ 0 and finite; violating that is a
// programmer error and panics.
func WithRankTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("ca: WithRankTolerance requires a finite tolerance >= 0")
	}

	return func(o *options) { o.rankTol = tol }
}

// WithMaxAxes caps the number of retained axes (the leading n by inertia).
// n must be ≥ 1; use no option at all to retain every axis.
func WithMaxAxes(n int) Option {
	if n < 1 {
		panic("ca: WithMaxAxes requires n >= 1")
	}

	return func(o *options) { o.maxAxes = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{rankTol: DefaultRankTolerance, maxAxes: DefaultMaxAxes}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
