// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/avolokh/crosstab/contab"
)

// seriesPalette colors row series in declaration order, cycling when a
// table has more rows than entries.
var seriesPalette = []color.RGBA{
	{R: 70, G: 130, B: 180, A: 255},  // steel blue
	{R: 205, G: 92, B: 92, A: 255},   // indian red
	{R: 60, G: 179, B: 113, A: 255},  // medium sea green
	{R: 218, G: 165, B: 32, A: 255},  // goldenrod
	{R: 147, G: 112, B: 219, A: 255}, // medium purple
	{R: 95, G: 158, B: 160, A: 255},  // cadet blue
}

var (
	barWidth    = vg.Points(16)
	barChartW   = 8 * vg.Inch
	barChartH   = 5 * vg.Inch
	barChartGap = 0.15 // headroom above the tallest bar, as a fraction
)

// MarginalBars renders the observed counts as a grouped bar chart and saves
// it to path. Bars are grouped by column category (the X axis); each row
// category is one colored series with a legend entry.
//
// Stage 1 (Validate): nil table and empty path are rejected up front.
// Stage 2 (Build): one BarChart per row, offset so groups center on the
// column tick; colors cycle through a fixed palette.
// Stage 3 (Save): format is chosen by the path extension.
//
// Complexity: O(R·C) plus encoding.
func MarginalBars(t *contab.Table, title, path string) error {
	if err := contab.ValidateNotNil(t); err != nil {
		return fmt.Errorf("MarginalBars: %w", ErrNilInput)
	}
	if path == "" {
		return fmt.Errorf("MarginalBars: %w", ErrEmptyPath)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = joinedName(t.ColLabels())
	p.Y.Label.Text = "Count"

	rows, cols := t.Rows(), t.Cols()
	maxCount := 0.0
	for i := 0; i < rows; i++ {
		values := make(plotter.Values, cols)
		for j := 0; j < cols; j++ {
			v, err := t.At(i, j)
			if err != nil {
				return fmt.Errorf("MarginalBars: %w", err)
			}
			values[j] = v
			if v > maxCount {
				maxCount = v
			}
		}

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return fmt.Errorf("MarginalBars: %w", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = seriesPalette[i%len(seriesPalette)]
		bars.Offset = barWidth * vg.Length(float64(i)-float64(rows-1)/2)

		p.Add(bars)
		p.Legend.Add(t.RowLabels()[i], bars)
	}

	p.NominalX(t.ColLabels()...)
	p.Legend.Top = true
	p.Y.Min = 0
	p.Y.Max = maxCount * (1 + barChartGap)

	if err := p.Save(barChartW, barChartH, path); err != nil {
		return fmt.Errorf("MarginalBars: save %q: %w", path, err)
	}

	return nil
}

// RowTotalsBars renders the row-variable marginal totals as a single bar
// series. One bar per row category, in table order.
func RowTotalsBars(t *contab.Table, title, path string) error {
	if err := contab.ValidateNotNil(t); err != nil {
		return fmt.Errorf("RowTotalsBars: %w", ErrNilInput)
	}

	if err := totalsBars(t.RowSums(), t.RowLabels(), title, path); err != nil {
		return fmt.Errorf("RowTotalsBars: %w", err)
	}

	return nil
}

// ColTotalsBars renders the column-variable marginal totals as a single bar
// series. One bar per column category, in table order.
func ColTotalsBars(t *contab.Table, title, path string) error {
	if err := contab.ValidateNotNil(t); err != nil {
		return fmt.Errorf("ColTotalsBars: %w", ErrNilInput)
	}

	if err := totalsBars(t.ColSums(), t.ColLabels(), title, path); err != nil {
		return fmt.Errorf("ColTotalsBars: %w", err)
	}

	return nil
}

// totalsBars draws one marginal-total series.
func totalsBars(totals []float64, labels []string, title, path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Count"

	values := make(plotter.Values, len(totals))
	copy(values, totals)

	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = seriesPalette[0]

	p.Add(bars)
	p.NominalX(labels...)
	p.Y.Min = 0

	return p.Save(barChartW, barChartH, path)
}

// joinedName compresses a label list into a short axis caption.
func joinedName(labels []string) string {
	if len(labels) <= 4 {
		out := ""
		for i, l := range labels {
			if i > 0 {
				out += " / "
			}
			out += l
		}

		return out
	}

	return fmt.Sprintf("%d categories", len(labels))
}
