// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package engine_test

import (
	"fmt"
	"testing"

	"github.com/andescore/qcstat/pkg/engine"
	"github.com/andescore/qcstat/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeMSAReturnsDocument(t *testing.T) {
	headers := []string{"Parte", "Operador", "Medicion1", "Medicion2"}
	partMeans := []float64{10.0, 12.0, 9.0, 14.0, 11.0}

	var rows []map[string]any
	for i, pm := range partMeans {
		part := fmt.Sprintf("%d", i+1)
		for _, op := range []string{"A", "B"} {
			rows = append(rows, map[string]any{
				"Parte":     part,
				"Operador":  op,
				"Medicion1": pm - 0.1,
				"Medicion2": pm + 0.1,
			})
		}
	}
	table := types.Table{Headers: headers, Rows: rows}

	doc, qcErr := engine.AnalyzeMSA(table, nil, nil)
	require.Nil(t, qcErr)
	require.NotNil(t, doc)
	assert.NotEmpty(t, doc.Instructions)
}

func TestAnalyzeCapacidadProcesoReturnsDocument(t *testing.T) {
	headers := []string{"Valor"}
	values := []float64{9.9, 10.1, 10.0, 9.95, 10.05, 10.0, 9.98, 10.02, 9.97, 10.03,
		9.99, 10.01, 10.0, 9.96, 10.04, 9.98, 10.02, 10.0, 9.99, 10.01,
		9.97, 10.03, 10.0, 9.95, 10.05, 9.99, 10.01, 10.0, 9.98, 10.02}

	rows := make([]map[string]any, len(values))
	for i, v := range values {
		rows[i] = map[string]any{"Valor": v}
	}
	table := types.Table{Headers: headers, Rows: rows}

	doc, qcErr := engine.AnalyzeCapacidadProceso(table, &types.SpecLimits{LEI: 9.5, LES: 10.5})
	require.Nil(t, qcErr)
	require.NotNil(t, doc)
	assert.NotEmpty(t, doc.Instructions)
}

func TestAnalyzeMSAPropagatesValidationError(t *testing.T) {
	table := types.Table{Headers: []string{"Solo"}, Rows: []map[string]any{{"Solo": 1.0}}}

	doc, qcErr := engine.AnalyzeMSA(table, nil, nil)
	assert.Nil(t, doc)
	require.NotNil(t, qcErr)
}
