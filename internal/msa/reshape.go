// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package msa implements the Gauge R&R / Measurement System Analysis
// engine: a two-way crossed ANOVA variance-component solver, GRR
// classification, per-operator statistics, chart-series construction,
// and the Spanish narrative assembly.
package msa

import (
	"fmt"
	"sort"

	"github.com/andescore/qcstat/pkg/types"
	"github.com/andescore/qcstat/pkg/utils"
)

// Measurement is one long-form observation: a single reading tagged
// with its part and operator.
type Measurement struct {
	Part       string
	Operator   string
	Value      float64
	SourceCol  string
	SourceRow  int
}

// Reshape converts a wide measurement table into long form: each row
// of the input becomes len(mapping.Measurements) long rows (spec.md
// §4.3). Cells must already be validated numeric by the caller; any
// non-numeric cell is reported as a CALCULATION_ERROR since the
// validator is expected to have filtered those out.
func Reshape(table types.Table, mapping types.ColumnMapping) ([]Measurement, *types.QCError) {
	out := make([]Measurement, 0, len(table.Rows)*len(mapping.Measurements))

	for i, row := range table.Rows {
		part := fmt.Sprint(row[mapping.Part])
		operator := fmt.Sprint(row[mapping.Operator])

		for _, col := range mapping.Measurements {
			raw, ok := row[col]
			if !ok {
				return nil, types.NewCalculationError(
					fmt.Sprintf("falta el valor de la columna '%s' en la fila %d", col, i+2), nil,
				)
			}
			v, err := toFloat(raw)
			if err != nil {
				return nil, types.NewCalculationError(
					fmt.Sprintf("valor no numérico en la columna '%s', fila %d", col, i+2), err,
				)
			}
			out = append(out, Measurement{
				Part:      part,
				Operator:  operator,
				Value:     v,
				SourceCol: col,
				SourceRow: i + 2,
			})
		}
	}

	return out, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		// Same strip+comma->dot parse the MSA validator uses
		// (internal/validators/parse.go), so a cell it certified as
		// numeric can't silently reshape into a different value here.
		return utils.ParseNumericValue(x, ',')
	default:
		return 0, fmt.Errorf("tipo no numérico: %T", v)
	}
}

// UniqueSorted returns the distinct labels from a column selector in
// first-seen-then-sorted order, used to give parts/operators a
// deterministic axis ordering for ANOVA cell indexing and chart series.
func UniqueSorted(measurements []Measurement, pick func(Measurement) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range measurements {
		label := pick(m)
		if !seen[label] {
			seen[label] = true
			out = append(out, label)
		}
	}
	sort.Strings(out)
	return out
}
