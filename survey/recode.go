// Package survey: YAML-declared recode rules.

package survey

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// VarRules describes how one variable's raw answer labels collapse into
// analysis categories.
//
// Fields:
//   - Variable   — the CSV column the rules apply to (informational).
//   - Categories — the closed output set, in desired table order.
//   - Map        — raw label → output category. Raw labels that already
//     equal an output category pass through without an entry.
//   - Discard    — raw labels dropped on purpose (refusals, "don't know").
//     Discarding must be explicit; an unlisted unknown label is an error.
type VarRules struct {
	Variable   string            `yaml:"variable"`
	Categories []string          `yaml:"categories"`
	Map        map[string]string `yaml:"map"`
	Discard    []string          `yaml:"discard"`
}

// Rules is a complete recode specification for both variables.
type Rules struct {
	Row VarRules `yaml:"row"`
	Col VarRules `yaml:"col"`
}

// ParseRules decodes and validates a YAML recode document.
// Validation per variable: Categories non-empty and unique; every Map target
// is a declared category; no label is both mapped and discarded.
// Errors: ErrBadRules (wrapped with the offending detail), YAML syntax
// errors from the decoder.
func ParseRules(doc []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(doc, &r); err != nil {
		return nil, fmt.Errorf("ParseRules: %w", err)
	}
	if err := r.Row.validate("row"); err != nil {
		return nil, fmt.Errorf("ParseRules: %w", err)
	}
	if err := r.Col.validate("col"); err != nil {
		return nil, fmt.Errorf("ParseRules: %w", err)
	}

	return &r, nil
}

// validate checks the structural invariants of one variable's rules.
func (v *VarRules) validate(which string) error {
	if len(v.Categories) == 0 {
		return fmt.Errorf("%s: no categories: %w", which, ErrBadRules)
	}
	members := make(map[string]struct{}, len(v.Categories))
	for _, c := range v.Categories {
		if _, dup := members[c]; dup {
			return fmt.Errorf("%s: duplicate category %q: %w", which, c, ErrBadRules)
		}
		members[c] = struct{}{}
	}
	for raw, target := range v.Map {
		if _, ok := members[target]; !ok {
			return fmt.Errorf("%s: map %q -> %q: target not a category: %w", which, raw, target, ErrBadRules)
		}
	}
	discarded := make(map[string]struct{}, len(v.Discard))
	for _, d := range v.Discard {
		if _, mapped := v.Map[d]; mapped {
			return fmt.Errorf("%s: %q both mapped and discarded: %w", which, d, ErrBadRules)
		}
		discarded[d] = struct{}{}
	}

	return nil
}

// CategorySets builds the row and column CategorySets declared by the rules.
func (r *Rules) CategorySets() (row, col *CategorySet, err error) {
	row, err = NewCategorySet(r.Row.Variable, r.Row.Categories)
	if err != nil {
		return nil, nil, err
	}
	col, err = NewCategorySet(r.Col.Variable, r.Col.Categories)
	if err != nil {
		return nil, nil, err
	}

	return row, col, nil
}

// Apply recodes observations through the rules, producing a new slice.
// Per observation and variable, in order: explicit discard wins, then the
// Map entry, then identity for labels already in Categories. Anything else
// is ErrUnknownCategory — the caller must extend the rules, not hope.
// Observations with either side discarded are omitted entirely.
// Complexity: O(observations).
func (r *Rules) Apply(obs []Observation) ([]Observation, error) {
	if len(obs) == 0 {
		return nil, fmt.Errorf("Apply: %w", ErrEmptyInput)
	}

	out := make([]Observation, 0, len(obs))
	for i, o := range obs {
		rowLabel, rowKeep, err := r.Row.recode(o.Row)
		if err != nil {
			return nil, fmt.Errorf("Apply: record %d: %w", i, err)
		}
		colLabel, colKeep, err := r.Col.recode(o.Col)
		if err != nil {
			return nil, fmt.Errorf("Apply: record %d: %w", i, err)
		}
		if !rowKeep || !colKeep {
			continue
		}
		out = append(out, Observation{Row: rowLabel, Col: colLabel})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("Apply: all observations discarded: %w", ErrEmptyInput)
	}

	return out, nil
}

// recode resolves one raw label: (category, keep=true) or (“”, keep=false)
// for explicit discards. Unknown labels error.
func (v *VarRules) recode(raw string) (string, bool, error) {
	for _, d := range v.Discard {
		if raw == d {
			return "", false, nil
		}
	}
	if target, ok := v.Map[raw]; ok {
		return target, true, nil
	}
	for _, c := range v.Categories {
		if raw == c {
			return raw, true, nil
		}
	}

	return "", false, fmt.Errorf("%s: %q: %w", v.Variable, raw, ErrUnknownCategory)
}
