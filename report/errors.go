// SPDX-License-Identifier: MIT

package report

import "errors"

var (
	// ErrNilReport - formatting methods called on a nil or unbuilt report.
	ErrNilReport = errors.New("report: nil report")

	// ErrEmptyPath - no output path was given.
	ErrEmptyPath = errors.New("report: empty output path")

	// ErrBadAlpha - significance level outside (0, 1).
	ErrBadAlpha = errors.New("report: alpha must lie in (0, 1)")
)
