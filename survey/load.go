// Package survey: CSV extraction of paired observations.

package survey

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// LoadCSV reads a survey export and extracts one Observation per record,
// pairing the values of the rowVar and colVar columns (selected by header
// name, case-sensitive).
//
// Records where either cell is blank (after trimming whitespace) are
// skipped: a blank answer carries no category information. Unknown category
// labels are NOT filtered here — deciding what a label means is the recode
// stage's job.
//
// Errors:
//   - ErrEmptyInput    — no header row, or no data rows at all.
//   - ErrMissingColumn — rowVar or colVar absent from the header.
//   - CSV syntax errors from encoding/csv are passed through.
//
// Complexity: O(records).
func LoadCSV(r io.Reader, rowVar, colVar string) ([]Observation, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("LoadCSV: %w", ErrEmptyInput)
	}
	if err != nil {
		return nil, fmt.Errorf("LoadCSV: read header: %w", err)
	}

	rowIdx, colIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case rowVar:
			rowIdx = i
		case colVar:
			colIdx = i
		}
	}
	if rowIdx < 0 {
		return nil, fmt.Errorf("LoadCSV: %q: %w", rowVar, ErrMissingColumn)
	}
	if colIdx < 0 {
		return nil, fmt.Errorf("LoadCSV: %q: %w", colVar, ErrMissingColumn)
	}

	var obs []Observation
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("LoadCSV: read record: %w", err)
		}
		rv := strings.TrimSpace(rec[rowIdx])
		cv := strings.TrimSpace(rec[colIdx])
		if rv == "" || cv == "" {
			continue // blank answers carry no category information
		}
		obs = append(obs, Observation{Row: rv, Col: cv})
	}
	if len(obs) == 0 {
		return nil, fmt.Errorf("LoadCSV: %w", ErrEmptyInput)
	}

	return obs, nil
}
