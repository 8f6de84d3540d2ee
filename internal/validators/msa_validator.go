// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/andescore/qcstat/internal/config"
	"github.com/andescore/qcstat/pkg/types"
)

// measurementPatterns recognizes numbered measurement-column forms
// (e.g. "Medicion1", "Rep3") that a literal alias list can't express;
// it is additive to config.ColumnAliases.Measurement, not a
// replacement for it (spec.md §4.2).
var measurementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^measurement\d*$`),
	regexp.MustCompile(`^medici[oó]n\d*$`),
	regexp.MustCompile(`^med\d+$`),
	regexp.MustCompile(`^m\d+$`),
	regexp.MustCompile(`^replica\d*$`),
	regexp.MustCompile(`^rep\d+$`),
}

// isMeasurementColumn reports whether a column name (already
// lower-cased) matches one of the built-in numbered measurement-column
// forms (spec.md §4.2).
func isMeasurementColumn(lower string) bool {
	for _, re := range measurementPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func toAliasSet(aliases []string) map[string]bool {
	set := make(map[string]bool, len(aliases))
	for _, a := range aliases {
		set[strings.ToLower(strings.TrimSpace(a))] = true
	}
	return set
}

// ValidateMSA detects the Part/Operator/measurement columns against
// the module-default aliases, validates that measurement cells are
// numeric and non-empty, and checks the minimum-data thresholds, in
// that order (spec.md §4.2: "Stop at the first failing category in
// order: structure -> numeric -> empty -> minimum-data").
func ValidateMSA(table types.Table) (*types.ColumnMapping, *types.QCError) {
	return ValidateMSAWithConfig(table, config.DefaultAnalysisConfig())
}

// ValidateMSAWithConfig is ValidateMSA using cfg's column aliases and
// cfg.MaxOffenders in place of the module defaults (spec.md §9:
// "inject them as configuration structs if the host language
// prefers").
func ValidateMSAWithConfig(table types.Table, cfg *config.AnalysisConfig) (*types.ColumnMapping, *types.QCError) {
	mapping, err := detectMSAColumns(table, cfg.ColumnAliases)
	if err != nil {
		return nil, err
	}

	if err := validateMSANumeric(table, *mapping, cfg.MaxOffenders); err != nil {
		return nil, err
	}

	if err := validateMSAEmptyCells(table, *mapping, cfg.MaxOffenders); err != nil {
		return nil, err
	}

	if err := validateMSAMinimumData(table, *mapping); err != nil {
		return nil, err
	}

	return mapping, nil
}

func detectMSAColumns(table types.Table, aliases config.ColumnAliases) (*types.ColumnMapping, *types.QCError) {
	partAliases := toAliasSet(aliases.Part)
	operatorAliases := toAliasSet(aliases.Operator)
	measurementAliases := toAliasSet(aliases.Measurement)

	var partCol, operatorCol string
	var measurementCols []string

	for _, header := range table.Headers {
		lower := strings.ToLower(strings.TrimSpace(header))
		switch {
		case partAliases[lower]:
			if partCol == "" {
				partCol = header
			}
		case operatorAliases[lower]:
			if operatorCol == "" {
				operatorCol = header
			}
		case measurementAliases[lower] || isMeasurementColumn(lower):
			measurementCols = append(measurementCols, header)
		}
	}

	var missing []string
	if partCol == "" {
		missing = append(missing, "parte/part/pieza")
	}
	if operatorCol == "" {
		missing = append(missing, "operador/operator/op")
	}
	if len(measurementCols) == 0 {
		missing = append(missing, "columnas de medición (measurement, medición, med#, m#, replica, rep#)")
	}

	if len(missing) > 0 {
		return nil, types.NewMissingColumnsError(
			fmt.Sprintf("No se encontraron las columnas requeridas: %s", strings.Join(missing, ", ")),
			missing...,
		)
	}

	return &types.ColumnMapping{
		Part:         partCol,
		Operator:     operatorCol,
		Measurements: measurementCols,
	}, nil
}

func validateMSANumeric(table types.Table, mapping types.ColumnMapping, maxOffenders int) *types.QCError {
	var offenders []types.CellRef
	for i, row := range table.Rows {
		for _, col := range mapping.Measurements {
			raw, present := row[col]
			if isBlank(raw, present) {
				continue // empty cells are a separate category
			}
			if _, ok := coerceNumeric(raw); !ok {
				offenders = append(offenders, types.CellRef{
					Column: col,
					Row:    i + 2, // +1 for header, +1 for 1-indexing
					Value:  cellString(raw),
				})
				if len(offenders) >= maxOffenders {
					break
				}
			}
		}
		if len(offenders) >= maxOffenders {
			break
		}
	}

	if len(offenders) > 0 {
		return types.NewNonNumericDataError(
			fmt.Sprintf("Se encontraron %d celda(s) con datos no numéricos en las columnas de medición.", len(offenders)),
			offenders,
		)
	}
	return nil
}

func validateMSAEmptyCells(table types.Table, mapping types.ColumnMapping, maxOffenders int) *types.QCError {
	checkedCols := append([]string{mapping.Part, mapping.Operator}, mapping.Measurements...)
	colIndex := make(map[string]int, len(table.Headers))
	for idx, h := range table.Headers {
		colIndex[h] = idx
	}

	var offenders []types.CellRef
	for i, row := range table.Rows {
		for _, col := range checkedCols {
			raw, present := row[col]
			if isBlank(raw, present) {
				offenders = append(offenders, types.CellRef{
					Column: spreadsheetColumn(colIndex[col]),
					Row:    i + 2,
					Value:  "",
				})
				if len(offenders) >= maxOffenders {
					break
				}
			}
		}
		if len(offenders) >= maxOffenders {
			break
		}
	}

	if len(offenders) > 0 {
		return types.NewEmptyCellsError(
			fmt.Sprintf("Se encontraron %d celda(s) vacía(s) en columnas requeridas.", len(offenders)),
			offenders,
		)
	}
	return nil
}

func validateMSAMinimumData(table types.Table, mapping types.ColumnMapping) *types.QCError {
	parts := map[string]bool{}
	operators := map[string]bool{}
	for _, row := range table.Rows {
		if v, ok := row[mapping.Part]; ok && v != nil {
			parts[fmt.Sprint(v)] = true
		}
		if v, ok := row[mapping.Operator]; ok && v != nil {
			operators[fmt.Sprint(v)] = true
		}
	}

	var problems []string
	if len(parts) < 2 {
		problems = append(problems, fmt.Sprintf("se requieren al menos 2 piezas distintas (se encontraron %d)", len(parts)))
	}
	if len(operators) < 2 {
		problems = append(problems, fmt.Sprintf("se requieren al menos 2 operadores distintos (se encontraron %d)", len(operators)))
	}
	if len(mapping.Measurements) < 2 {
		problems = append(problems, fmt.Sprintf("se requieren al menos 2 columnas de medición (se encontraron %d)", len(mapping.Measurements)))
	}

	if len(problems) > 0 {
		return types.NewInsufficientDataError(
			fmt.Sprintf("Datos insuficientes para el análisis MSA: %s.", strings.Join(problems, "; ")),
			problems...,
		)
	}
	return nil
}
