// Package survey is the ingestion boundary between raw survey exports and
// the analysis pipeline.
//
// The survey package provides:
//
//   - LoadCSV: extract paired observations of two variables from a CSV
//     export, selected by header name.
//   - Rules: a YAML-declared recode specification that merges raw answer
//     labels into a closed set of analysis categories (e.g. collapsing six
//     education levels into Primary/Secondary/Tertiary) with a declared
//     output order and an explicit discard list.
//   - CategorySet: a validated, ordered, closed set of category labels for
//     one variable. InferCategorySets derives the sets from the data itself
//     when no rules exist yet.
//   - Crosstab: count observations into a contab.Table.
//
// Survey software emits arbitrary strings; this package is where they stop
// being arbitrary. Labels that are neither mapped, passed through, nor
// explicitly discarded are rejected with ErrUnknownCategory — silently
// passing them through (or silently dropping them) would bias every
// downstream margin. Each stage is a pure function producing a new value:
// records → observations → recoded observations → table.
package survey
