// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteText renders the report as an aligned plain-text summary:
// observed counts with margins, expected counts, standardized residuals
// with ±residualBand markers, the chi-squared verdict, and the retained
// axes with their principal coordinates.
func (r *Report) WriteText(w io.Writer) error {
	if r == nil || r.Table == nil {
		return fmt.Errorf("WriteText: %w", ErrNilReport)
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Contingency table %dx%d, N = %.0f\n\n",
		r.Table.Rows(), r.Table.Cols(), r.Table.GrandTotal()))

	r.writeCounts(&b)
	r.writeExpected(&b)
	r.writeResiduals(&b)
	r.writeChi(&b)
	r.writeAxes(&b)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}

	return nil
}

// labelWidth is the widest row label, so every block aligns the same way.
func (r *Report) labelWidth() int {
	w := len("Total")
	for _, l := range r.Table.RowLabels() {
		if len(l) > w {
			w = len(l)
		}
	}

	return w
}

func (r *Report) writeCounts(b *strings.Builder) {
	lw := r.labelWidth()

	b.WriteString("Observed counts\n")
	fmt.Fprintf(b, "%-*s", lw, "")
	for _, cl := range r.Table.ColLabels() {
		fmt.Fprintf(b, " %12s", cl)
	}
	fmt.Fprintf(b, " %12s\n", "Total")

	for i, rl := range r.Table.RowLabels() {
		fmt.Fprintf(b, "%-*s", lw, rl)
		for j := 0; j < r.Table.Cols(); j++ {
			v, _ := r.Table.At(i, j)
			fmt.Fprintf(b, " %12.0f", v)
		}
		fmt.Fprintf(b, " %12.0f\n", r.Table.RowSums()[i])
	}

	fmt.Fprintf(b, "%-*s", lw, "Total")
	for _, cs := range r.Table.ColSums() {
		fmt.Fprintf(b, " %12.0f", cs)
	}
	fmt.Fprintf(b, " %12.0f\n\n", r.Table.GrandTotal())
}

func (r *Report) writeExpected(b *strings.Builder) {
	lw := r.labelWidth()

	b.WriteString("Expected counts under independence\n")
	fmt.Fprintf(b, "%-*s", lw, "")
	for _, cl := range r.Table.ColLabels() {
		fmt.Fprintf(b, " %12s", cl)
	}
	b.WriteByte('\n')

	for i, rl := range r.Table.RowLabels() {
		fmt.Fprintf(b, "%-*s", lw, rl)
		for j := 0; j < r.Expected.Cols(); j++ {
			v, _ := r.Expected.At(i, j)
			fmt.Fprintf(b, " %12.2f", v)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func (r *Report) writeResiduals(b *strings.Builder) {
	lw := r.labelWidth()

	fmt.Fprintf(b, "Standardized residuals (marked beyond |%.0f|)\n", residualBand)
	fmt.Fprintf(b, "%-*s", lw, "")
	for _, cl := range r.Table.ColLabels() {
		fmt.Fprintf(b, " %12s", cl)
	}
	b.WriteByte('\n')

	for i, rl := range r.Table.RowLabels() {
		fmt.Fprintf(b, "%-*s", lw, rl)
		for j := 0; j < r.Residuals.Cols(); j++ {
			v, _ := r.Residuals.At(i, j)
			fmt.Fprintf(b, " %10.2f%s", v, marker(v))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

// marker flags cells outside the ±residualBand band: "+" for
// over-represented, "-" for under-represented, two spaces otherwise
// (keeping the columns aligned).
func marker(v float64) string {
	switch {
	case v > residualBand:
		return " +"
	case v < -residualBand:
		return " -"
	default:
		return "  "
	}
}

func (r *Report) writeChi(b *strings.Builder) {
	verdict := "NOT rejected"
	if r.Significant() {
		verdict = "REJECTED"
	}
	fmt.Fprintf(b, "Chi-squared test of independence\n")
	fmt.Fprintf(b, "  statistic = %.4f, df = %d, p = %.6g\n", r.Chi.Statistic, r.Chi.DF, r.Chi.PValue)
	fmt.Fprintf(b, "  independence %s at alpha = %g\n\n", verdict, r.Alpha)
}

func (r *Report) writeAxes(b *strings.Builder) {
	fmt.Fprintf(b, "Correspondence analysis: %d axes, total inertia = %.6f\n",
		r.CA.Dim(), r.CA.TotalInertia)

	for k, ax := range r.CA.Axes {
		fmt.Fprintf(b, "  axis %d: inertia = %.6f (%.1f%%)\n", k+1, ax.Inertia, ax.Percent)
	}
	b.WriteByte('\n')

	lw := r.labelWidth()
	b.WriteString("Principal coordinates\n")
	fmt.Fprintf(b, "%-*s", lw, "")
	for k := range r.CA.Axes {
		fmt.Fprintf(b, " %11s", fmt.Sprintf("Axis %d", k+1))
	}
	b.WriteByte('\n')

	for i, rl := range r.CA.RowLabels {
		fmt.Fprintf(b, "%-*s", lw, rl)
		for _, ax := range r.CA.Axes {
			fmt.Fprintf(b, " %11.4f", ax.RowCoords[i])
		}
		b.WriteByte('\n')
	}
	for j, cl := range r.CA.ColLabels {
		fmt.Fprintf(b, "%-*s", lw, cl)
		for _, ax := range r.CA.Axes {
			fmt.Fprintf(b, " %11.4f", ax.ColCoords[j])
		}
		b.WriteByte('\n')
	}
}
