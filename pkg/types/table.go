// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

// Table is a row-oriented measurement table: Headers gives the
// canonical column order (needed to render spreadsheet-notation cell
// references such as "C7"), and each Row maps a column name to its raw
// cell value. Cell values may be float64, int, or string (the
// validators accept strings using either "." or "," as the decimal
// separator, per spec.md §3). Decoding bytes/files into a Table is an
// external collaborator's job — this type is the boundary.
type Table struct {
	Headers []string
	Rows    []map[string]any
}

// ColumnMapping is the immutable result of the MSA validator: the
// resolved Part, Operator, and ordered measurement column names.
// Once produced it is never mutated; analyze_msa accepts a
// pre-validated ColumnMapping so callers can skip re-running the
// validator on trusted input.
type ColumnMapping struct {
	Part         string
	Operator     string
	Measurements []string
}

// ValidatedSeries is the immutable result of the Capability validator:
// the resolved column name, its finite float64 values in row order, and
// any non-fatal Spanish advisories (e.g. "menos de 20 valores").
type ValidatedSeries struct {
	ColumnName string
	Values     []float64
	Warnings   []string
}

// Specification carries the optional nominal/reference value for MSA
// bias analysis (spec.md §6: "specification: optional nominal value
// enabling bias/stability side-panels in the narrative").
type Specification struct {
	Nominal float64
}

// SpecLimits carries the optional {LEI, LES} specification limits that
// enable the Process Capability subsection (spec.md §6).
// LEI = "límite especificación inferior" (lower spec limit),
// LES = "límite especificación superior" (upper spec limit).
type SpecLimits struct {
	LEI float64
	LES float64
}
