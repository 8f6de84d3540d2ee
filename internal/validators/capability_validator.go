// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package validators

import (
	"fmt"
	"math"
	"strings"

	"github.com/andescore/qcstat/internal/config"
	"github.com/andescore/qcstat/pkg/types"
)

// minRecommendedValues is the sample-size threshold below which the
// Capability validator emits a Spanish advisory instead of failing the
// analysis (spec.md §4.2).
const minRecommendedValues = 20

// ValidateCapacidadProceso selects the measurement column (preferring
// one literally named "Valores", case-insensitively, else the first
// numeric-convertible column), rejects empty or non-numeric cells, and
// emits a non-fatal Spanish warning when there are fewer than 20
// values (spec.md §4.2).
func ValidateCapacidadProceso(table types.Table) (*types.ValidatedSeries, *types.QCError) {
	return ValidateCapacidadProcesoWithConfig(table, config.DefaultAnalysisConfig())
}

// ValidateCapacidadProcesoWithConfig is ValidateCapacidadProceso using
// cfg.MaxOffenders in place of the module default.
func ValidateCapacidadProcesoWithConfig(table types.Table, cfg *config.AnalysisConfig) (*types.ValidatedSeries, *types.QCError) {
	col, err := detectCapabilityColumn(table)
	if err != nil {
		return nil, err
	}

	values, vErr := extractCapabilityValues(table, col, cfg.MaxOffenders)
	if vErr != nil {
		return nil, vErr
	}

	series := &types.ValidatedSeries{
		ColumnName: col,
		Values:     values,
	}
	if len(values) < minRecommendedValues {
		series.Warnings = append(series.Warnings, fmt.Sprintf(
			"Se recomienda un mínimo de %d valores para un análisis confiable; se encontraron %d.",
			minRecommendedValues, len(values),
		))
	}
	return series, nil
}

func detectCapabilityColumn(table types.Table) (string, *types.QCError) {
	for _, header := range table.Headers {
		if strings.EqualFold(strings.TrimSpace(header), "valores") {
			return header, nil
		}
	}

	for _, header := range table.Headers {
		if columnLooksNumeric(table, header) {
			return header, nil
		}
	}

	return "", types.NewNoNumericColumnError(
		"No se encontró ninguna columna numérica para el análisis de capacidad de proceso.",
	)
}

// columnLooksNumeric reports whether every non-blank cell in a column
// is coercible to float64; an all-blank column does not count.
func columnLooksNumeric(table types.Table, header string) bool {
	sawValue := false
	for _, row := range table.Rows {
		raw, present := row[header]
		if isBlank(raw, present) {
			continue
		}
		if _, ok := coerceNumeric(raw); !ok {
			return false
		}
		sawValue = true
	}
	return sawValue
}

func extractCapabilityValues(table types.Table, col string, maxOffenders int) ([]float64, *types.QCError) {
	var emptyOffenders []types.CellRef
	var nonNumericOffenders []types.CellRef
	values := make([]float64, 0, len(table.Rows))

	for i, row := range table.Rows {
		raw, present := row[col]
		if isBlank(raw, present) {
			if len(emptyOffenders) < maxOffenders {
				emptyOffenders = append(emptyOffenders, types.CellRef{Column: col, Row: i + 2})
			}
			continue
		}
		v, ok := coerceNumeric(raw)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			if len(nonNumericOffenders) < maxOffenders {
				nonNumericOffenders = append(nonNumericOffenders, types.CellRef{
					Column: col, Row: i + 2, Value: cellString(raw),
				})
			}
			continue
		}
		values = append(values, v)
	}

	if len(emptyOffenders) > 0 {
		return nil, types.NewEmptyCellsError(
			fmt.Sprintf("Se encontraron %d celda(s) vacía(s) en la columna '%s'.", len(emptyOffenders), col),
			emptyOffenders,
		)
	}
	if len(nonNumericOffenders) > 0 {
		return nil, types.NewNonNumericValuesError(
			fmt.Sprintf("Se encontraron %d valor(es) no numérico(s) en la columna '%s'.", len(nonNumericOffenders), col),
			nonNumericOffenders,
		)
	}

	return values, nil
}
