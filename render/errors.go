// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrNilInput - the table or analysis result to draw is nil.
	ErrNilInput = errors.New("render: nil input")

	// ErrNoAxes - the analysis produced no retained axes, so there is
	// nothing to place on a map.
	ErrNoAxes = errors.New("render: result has no axes to plot")

	// ErrEmptyPath - no output path was given.
	ErrEmptyPath = errors.New("render: empty output path")
)
