// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package validators

import (
	"testing"

	"github.com/andescore/qcstat/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balancedMSATable() types.Table {
	headers := []string{"Parte", "Operador", "Medicion1", "Medicion2", "Medicion3"}
	var rows []map[string]any
	for _, part := range []string{"1", "2", "3", "4", "5"} {
		for _, op := range []string{"A", "B"} {
			rows = append(rows, map[string]any{
				"Parte": part, "Operador": op,
				"Medicion1": "10.1", "Medicion2": "10.2", "Medicion3": "10.0",
			})
		}
	}
	return types.Table{Headers: headers, Rows: rows}
}

func TestValidateMSASuccess(t *testing.T) {
	mapping, err := ValidateMSA(balancedMSATable())
	require.Nil(t, err)
	require.NotNil(t, mapping)
	assert.Equal(t, "Parte", mapping.Part)
	assert.Equal(t, "Operador", mapping.Operator)
	assert.ElementsMatch(t, []string{"Medicion1", "Medicion2", "Medicion3"}, mapping.Measurements)
}

func TestValidateMSAMissingColumns(t *testing.T) {
	tbl := types.Table{
		Headers: []string{"Foo", "Bar"},
		Rows:    []map[string]any{{"Foo": "1", "Bar": "2"}},
	}
	_, err := ValidateMSA(tbl)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrMissingColumns, err.Code)
}

func TestValidateMSANonNumeric(t *testing.T) {
	tbl := balancedMSATable()
	tbl.Rows[0]["Medicion1"] = "not-a-number"
	_, err := ValidateMSA(tbl)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrNonNumericData, err.Code)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "Medicion1", err.Details[0].Column)
}

func TestValidateMSAEmptyCells(t *testing.T) {
	tbl := balancedMSATable()
	tbl.Rows[0]["Medicion1"] = ""
	_, err := ValidateMSA(tbl)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrEmptyCells, err.Code)
}

func TestValidateMSAInsufficientData(t *testing.T) {
	tbl := types.Table{
		Headers: []string{"Parte", "Operador", "Medicion1", "Medicion2"},
		Rows: []map[string]any{
			{"Parte": "1", "Operador": "A", "Medicion1": "1.0", "Medicion2": "1.1"},
		},
	}
	_, err := ValidateMSA(tbl)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrInsufficientData, err.Code)
}

func TestValidateMSACommaDecimal(t *testing.T) {
	tbl := balancedMSATable()
	tbl.Rows[0]["Medicion1"] = "10,5"
	mapping, err := ValidateMSA(tbl)
	require.Nil(t, err)
	require.NotNil(t, mapping)
}

func TestValidateMSAFailureOrderStructureBeforeNumeric(t *testing.T) {
	// Missing the operator column entirely AND a non-numeric cell:
	// structure must be reported, not the numeric issue.
	tbl := types.Table{
		Headers: []string{"Parte", "Medicion1", "Medicion2"},
		Rows: []map[string]any{
			{"Parte": "1", "Medicion1": "bad", "Medicion2": "1.0"},
		},
	}
	_, err := ValidateMSA(tbl)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrMissingColumns, err.Code)
}
