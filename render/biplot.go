// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/avolokh/crosstab/ca"
)

var (
	biplotW = 8 * vg.Inch
	biplotH = 8 * vg.Inch

	rowGlyphRadius = vg.Points(4)
	colGlyphRadius = vg.Points(4)
)

var (
	rowPointColor = color.RGBA{R: 178, G: 34, B: 34, A: 255} // firebrick
	colPointColor = color.RGBA{R: 25, G: 25, B: 112, A: 255} // midnight blue
)

// Biplot renders a correspondence map: rows and columns in principal
// coordinates on the first two retained axes, saved to path. Row categories
// draw as filled circles, column categories as filled pyramids, both with a
// text label beside the point. Axis captions carry each axis's share of the
// total inertia.
//
// A result with a single retained axis still renders: the second coordinate
// is zero for every point and the Y axis is captioned accordingly. A result
// with no axes at all is ErrNoAxes.
//
// Complexity: O(R + C) plus encoding.
func Biplot(res *ca.Result, title, path string) error {
	if res == nil {
		return fmt.Errorf("Biplot: %w", ErrNilInput)
	}
	if path == "" {
		return fmt.Errorf("Biplot: %w", ErrEmptyPath)
	}
	if res.Dim() == 0 {
		return fmt.Errorf("Biplot: %w", ErrNoAxes)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = fmt.Sprintf("Axis 1 (%.1f%%)", res.Axes[0].Percent)
	if res.Dim() >= 2 {
		p.Y.Label.Text = fmt.Sprintf("Axis 2 (%.1f%%)", res.Axes[1].Percent)
	} else {
		p.Y.Label.Text = "Axis 2 (not retained)"
	}

	if err := addPoints(p, coordsXY(res, true), res.RowLabels, rowPointColor, draw.CircleGlyph{}, rowGlyphRadius); err != nil {
		return fmt.Errorf("Biplot: rows: %w", err)
	}
	if err := addPoints(p, coordsXY(res, false), res.ColLabels, colPointColor, draw.PyramidGlyph{}, colGlyphRadius); err != nil {
		return fmt.Errorf("Biplot: columns: %w", err)
	}

	p.Add(plotter.NewGrid())

	if err := p.Save(biplotW, biplotH, path); err != nil {
		return fmt.Errorf("Biplot: save %q: %w", path, err)
	}

	return nil
}

// coordsXY collects row or column principal coordinates on the first two
// axes; the second coordinate is zero when only one axis was retained.
func coordsXY(res *ca.Result, rows bool) plotter.XYs {
	first := res.Axes[0].ColCoords
	if rows {
		first = res.Axes[0].RowCoords
	}

	pts := make(plotter.XYs, len(first))
	for i, x := range first {
		pts[i].X = x
	}
	if res.Dim() >= 2 {
		second := res.Axes[1].ColCoords
		if rows {
			second = res.Axes[1].RowCoords
		}
		for i, y := range second {
			pts[i].Y = y
		}
	}

	return pts
}

// addPoints draws one glyph series plus its text labels.
func addPoints(p *plot.Plot, pts plotter.XYs, labels []string, c color.RGBA, shape draw.GlyphDrawer, radius vg.Length) error {
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Shape = shape
	scatter.GlyphStyle.Radius = radius
	p.Add(scatter)

	text, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    pts,
		Labels: labels,
	})
	if err != nil {
		return err
	}
	p.Add(text)

	return nil
}
