// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package report

import (
	"fmt"
	"testing"

	"github.com/andescore/qcstat/internal/config"
	"github.com/andescore/qcstat/internal/numerics"
	"github.com/andescore/qcstat/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceMSATable() (types.Table, types.ColumnMapping) {
	headers := []string{"Parte", "Operador", "Medicion1", "Medicion2", "Medicion3"}
	partMeans := []float64{10.1, 12.5, 8.8, 15.2, 11.0}
	jitter := []float64{-0.3, 0, 0.3}

	var rows []map[string]any
	for i, pm := range partMeans {
		part := fmt.Sprintf("%d", i+1)
		for _, op := range []string{"A", "B"} {
			rows = append(rows, map[string]any{
				"Parte":     part,
				"Operador":  op,
				"Medicion1": pm + jitter[0],
				"Medicion2": pm + jitter[1],
				"Medicion3": pm + jitter[2],
			})
		}
	}
	table := types.Table{Headers: headers, Rows: rows}
	mapping := types.ColumnMapping{Part: "Parte", Operator: "Operador", Measurements: []string{"Medicion1", "Medicion2", "Medicion3"}}
	return table, mapping
}

func TestAnalyzeMSAProducesDocument(t *testing.T) {
	table, _ := referenceMSATable()

	doc, err := AnalyzeMSA(table, nil, nil)
	require.Nil(t, err)
	require.NotNil(t, doc)

	assert.Len(t, doc.ChartData, 7)
	assert.NotEmpty(t, doc.Instructions)
	assert.Contains(t, []types.Classification{types.ClassAceptable, types.ClassMarginal, types.ClassInaceptable}, doc.Classification)

	result, ok := doc.Results.(*types.MSAResult)
	require.True(t, ok)
	assert.Equal(t, doc.Classification, result.Classification)
}

func TestAnalyzeMSAWithPreValidatedMapping(t *testing.T) {
	table, mapping := referenceMSATable()

	doc, err := AnalyzeMSA(table, &mapping, nil)
	require.Nil(t, err)
	require.NotNil(t, doc)
}

func TestAnalyzeMSAMissingColumns(t *testing.T) {
	table := types.Table{Headers: []string{"foo", "bar"}, Rows: []map[string]any{{"foo": 1, "bar": 2}}}
	doc, err := AnalyzeMSA(table, nil, nil)
	assert.Nil(t, doc)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrMissingColumns, err.Code)
}

func TestAnalyzeMSAWithConfigHonorsCustomColumnAliases(t *testing.T) {
	headers := []string{"Pieza-X", "Tecnico", "Medicion1", "Medicion2", "Medicion3"}
	partMeans := []float64{10.1, 12.5, 8.8, 15.2, 11.0}
	jitter := []float64{-0.3, 0, 0.3}

	var rows []map[string]any
	for i, pm := range partMeans {
		part := fmt.Sprintf("%d", i+1)
		for _, op := range []string{"A", "B"} {
			rows = append(rows, map[string]any{
				"Pieza-X":   part,
				"Tecnico":   op,
				"Medicion1": pm + jitter[0],
				"Medicion2": pm + jitter[1],
				"Medicion3": pm + jitter[2],
			})
		}
	}
	table := types.Table{Headers: headers, Rows: rows}

	cfg := config.DefaultAnalysisConfig()
	_, err := AnalyzeMSAWithConfig(table, nil, nil, cfg)
	require.NotNil(t, err, "module defaults shouldn't recognize 'Pieza-X'/'Tecnico'")

	cfg.ColumnAliases.Part = append(cfg.ColumnAliases.Part, "pieza-x")
	cfg.ColumnAliases.Operator = append(cfg.ColumnAliases.Operator, "tecnico")

	doc, err := AnalyzeMSAWithConfig(table, nil, nil, cfg)
	require.Nil(t, err)
	require.NotNil(t, doc)
}

func TestAnalyzeCapacidadProcesoWithConfigHonorsCustomThresholds(t *testing.T) {
	table := capabilityTable(normalLikeValues(100, 100, 10))

	cfg := config.DefaultAnalysisConfig()
	cfg.Thresholds.CpExcellent = 0.1
	cfg.Thresholds.CpAdequate = 0.05
	cfg.Thresholds.CpMarginal = 0.02
	cfg.Thresholds.CpInadequate = 0.01

	doc, err := AnalyzeCapacidadProcesoWithConfig(table, &types.SpecLimits{LEI: 70, LES: 130}, cfg)
	require.Nil(t, err)
	require.NotNil(t, doc)

	result := doc.Results.(types.CapacidadProcesoResult)
	require.NotNil(t, result.Capability)
	assert.Equal(t, types.ClassExcellent, result.Capability.CpkClassification)
}

func normalLikeValues(n int, mean, std float64) []float64 {
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		p := (float64(i) + 0.5) / float64(n)
		z, _ := numerics.NormalPPF(p)
		x[i] = mean + std*z
	}
	return x
}

func capabilityTable(values []float64) types.Table {
	headers := []string{"Valores"}
	rows := make([]map[string]any, len(values))
	for i, v := range values {
		rows[i] = map[string]any{"Valores": v}
	}
	return types.Table{Headers: headers, Rows: rows}
}

func TestAnalyzeCapacidadProcesoWithSpecLimits(t *testing.T) {
	table := capabilityTable(normalLikeValues(100, 100, 10))

	doc, err := AnalyzeCapacidadProceso(table, &types.SpecLimits{LEI: 70, LES: 130})
	require.Nil(t, err)
	require.NotNil(t, doc)

	result, ok := doc.Results.(types.CapacidadProcesoResult)
	require.True(t, ok)
	require.NotNil(t, result.Capability)
	assert.NotNil(t, result.Capability.Cp)

	var chartTypes []string
	for _, c := range doc.ChartData {
		chartTypes = append(chartTypes, c.Type)
	}
	assert.Contains(t, chartTypes, "histogram")
	assert.Contains(t, chartTypes, "i_chart")
	assert.Contains(t, chartTypes, "mr_chart")
	assert.Contains(t, chartTypes, "normality_plot")
}

func TestAnalyzeCapacidadProcesoWithoutSpecLimits(t *testing.T) {
	table := capabilityTable(normalLikeValues(50, 100, 10))

	doc, err := AnalyzeCapacidadProceso(table, nil)
	require.Nil(t, err)
	require.NotNil(t, doc)

	result := doc.Results.(types.CapacidadProcesoResult)
	assert.Nil(t, result.Capability)

	var chartTypes []string
	for _, c := range doc.ChartData {
		chartTypes = append(chartTypes, c.Type)
	}
	assert.NotContains(t, chartTypes, "histogram")
}

func TestAnalyzeCapacidadProcesoInvalidSpecLimits(t *testing.T) {
	table := capabilityTable(normalLikeValues(50, 100, 10))

	doc, err := AnalyzeCapacidadProceso(table, &types.SpecLimits{LEI: 130, LES: 70})
	assert.Nil(t, doc)
	require.NotNil(t, err)
}

func TestAnalyzeCapacidadProcesoNoNumericColumn(t *testing.T) {
	table := types.Table{Headers: []string{"texto"}, Rows: []map[string]any{{"texto": "abc"}}}
	doc, err := AnalyzeCapacidadProceso(table, nil)
	assert.Nil(t, doc)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrNoNumericColumn, err.Code)
}
