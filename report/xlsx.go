// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names, in the order they are created.
const (
	sheetCounts    = "Counts"
	sheetExpected  = "Expected"
	sheetResiduals = "Residuals"
	sheetChi       = "ChiSquared"
	sheetAxes      = "Axes"
	sheetRowCoords = "RowCoords"
	sheetColCoords = "ColCoords"
)

const labelColWidth = 28

// SaveXLSX writes the report as an Excel workbook with one sheet per
// artifact. Counts carries row/column totals; Residuals are the chi-style
// standardized residuals; RowCoords and ColCoords hold the principal
// coordinates per retained axis.
func (r *Report) SaveXLSX(path string) error {
	if r == nil || r.Table == nil {
		return fmt.Errorf("SaveXLSX: %w", ErrNilReport)
	}
	if path == "" {
		return fmt.Errorf("SaveXLSX: %w", ErrEmptyPath)
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetCounts)

	if err := r.fillCounts(f); err != nil {
		return fmt.Errorf("SaveXLSX: %w", err)
	}
	if err := r.fillGrid(f, sheetExpected, r.Expected.At); err != nil {
		return fmt.Errorf("SaveXLSX: %w", err)
	}
	if err := r.fillGrid(f, sheetResiduals, r.Residuals.At); err != nil {
		return fmt.Errorf("SaveXLSX: %w", err)
	}
	if err := r.fillChi(f); err != nil {
		return fmt.Errorf("SaveXLSX: %w", err)
	}
	if err := r.fillAxes(f); err != nil {
		return fmt.Errorf("SaveXLSX: %w", err)
	}
	if err := r.fillCoords(f, sheetRowCoords, r.CA.RowLabels, true); err != nil {
		return fmt.Errorf("SaveXLSX: %w", err)
	}
	if err := r.fillCoords(f, sheetColCoords, r.CA.ColLabels, false); err != nil {
		return fmt.Errorf("SaveXLSX: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("SaveXLSX: save %q: %w", path, err)
	}

	return nil
}

// writeHeader fills row 1 of sheet: a blank label cell, then the given
// column captions, sizing the label column while at it.
func writeHeader(f *excelize.File, sheet string, captions []string) error {
	if err := f.SetColWidth(sheet, "A", "A", labelColWidth); err != nil {
		return err
	}
	for j, caption := range captions {
		cell, err := excelize.CoordinatesToCellName(j+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, caption); err != nil {
			return err
		}
	}

	return nil
}

// fillCounts writes the observed table with row/column totals.
func (r *Report) fillCounts(f *excelize.File) error {
	captions := append(r.Table.ColLabels(), "Total")
	if err := writeHeader(f, sheetCounts, captions); err != nil {
		return err
	}

	for i, rl := range r.Table.RowLabels() {
		row := i + 2
		if err := f.SetCellValue(sheetCounts, fmt.Sprintf("A%d", row), rl); err != nil {
			return err
		}
		for j := 0; j < r.Table.Cols(); j++ {
			v, err := r.Table.At(i, j)
			if err != nil {
				return err
			}
			cell, err := excelize.CoordinatesToCellName(j+2, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetCounts, cell, v); err != nil {
				return err
			}
		}
		totalCell, err := excelize.CoordinatesToCellName(r.Table.Cols()+2, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetCounts, totalCell, r.Table.RowSums()[i]); err != nil {
			return err
		}
	}

	totalRow := r.Table.Rows() + 2
	if err := f.SetCellValue(sheetCounts, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return err
	}
	for j, cs := range r.Table.ColSums() {
		cell, err := excelize.CoordinatesToCellName(j+2, totalRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetCounts, cell, cs); err != nil {
			return err
		}
	}
	grandCell, err := excelize.CoordinatesToCellName(r.Table.Cols()+2, totalRow)
	if err != nil {
		return err
	}

	return f.SetCellValue(sheetCounts, grandCell, r.Table.GrandTotal())
}

// fillGrid writes one labeled R×C grid of values supplied by at.
func (r *Report) fillGrid(f *excelize.File, sheet string, at func(i, j int) (float64, error)) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, r.Table.ColLabels()); err != nil {
		return err
	}

	for i, rl := range r.Table.RowLabels() {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), rl); err != nil {
			return err
		}
		for j := 0; j < r.Table.Cols(); j++ {
			v, err := at(i, j)
			if err != nil {
				return err
			}
			cell, err := excelize.CoordinatesToCellName(j+2, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// fillChi writes the test verdict as a small key/value sheet.
func (r *Report) fillChi(f *excelize.File) error {
	if _, err := f.NewSheet(sheetChi); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetChi, "A", "A", labelColWidth); err != nil {
		return err
	}

	rows := []struct {
		key   string
		value any
	}{
		{"Statistic", r.Chi.Statistic},
		{"Degrees of freedom", r.Chi.DF},
		{"P-value", r.Chi.PValue},
		{"Alpha", r.Alpha},
		{"Independence rejected", r.Significant()},
	}
	for i, kv := range rows {
		if err := f.SetCellValue(sheetChi, fmt.Sprintf("A%d", i+1), kv.key); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetChi, fmt.Sprintf("B%d", i+1), kv.value); err != nil {
			return err
		}
	}

	return nil
}

// fillAxes writes inertia per retained axis plus the total.
func (r *Report) fillAxes(f *excelize.File) error {
	if _, err := f.NewSheet(sheetAxes); err != nil {
		return err
	}
	for j, caption := range []string{"Axis", "Inertia", "Percent"} {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetAxes, cell, caption); err != nil {
			return err
		}
	}

	for k, ax := range r.CA.Axes {
		row := k + 2
		if err := f.SetCellValue(sheetAxes, fmt.Sprintf("A%d", row), k+1); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetAxes, fmt.Sprintf("B%d", row), ax.Inertia); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetAxes, fmt.Sprintf("C%d", row), ax.Percent); err != nil {
			return err
		}
	}

	totalRow := len(r.CA.Axes) + 2
	if err := f.SetCellValue(sheetAxes, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return err
	}

	return f.SetCellValue(sheetAxes, fmt.Sprintf("B%d", totalRow), r.CA.TotalInertia)
}

// fillCoords writes one principal-coordinate sheet: a row per category, a
// column per retained axis.
func (r *Report) fillCoords(f *excelize.File, sheet string, labels []string, rows bool) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	captions := make([]string, r.CA.Dim())
	for k := range captions {
		captions[k] = fmt.Sprintf("Axis %d", k+1)
	}
	if err := writeHeader(f, sheet, captions); err != nil {
		return err
	}

	for i, l := range labels {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), l); err != nil {
			return err
		}
		for k, ax := range r.CA.Axes {
			coords := ax.ColCoords
			if rows {
				coords = ax.RowCoords
			}
			cell, err := excelize.CoordinatesToCellName(k+2, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, coords[i]); err != nil {
				return err
			}
		}
	}

	return nil
}
