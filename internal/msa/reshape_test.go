// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package msa

import (
	"testing"

	"github.com/andescore/qcstat/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshapeAcceptsCommaDecimalStrings(t *testing.T) {
	table := types.Table{
		Headers: []string{"Parte", "Operador", "Medicion1"},
		Rows: []map[string]any{
			{"Parte": "1", "Operador": "A", "Medicion1": "10,1"},
			{"Parte": "1", "Operador": "B", "Medicion1": "9,8"},
		},
	}
	mapping := types.ColumnMapping{Part: "Parte", Operator: "Operador", Measurements: []string{"Medicion1"}}

	out, err := Reshape(table, mapping)
	require.Nil(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, 10.1, out[0].Value, 1e-9)
	assert.InDelta(t, 9.8, out[1].Value, 1e-9)
}

func TestReshapeRejectsGarbageAfterNumber(t *testing.T) {
	table := types.Table{
		Headers: []string{"Parte", "Operador", "Medicion1"},
		Rows: []map[string]any{
			{"Parte": "1", "Operador": "A", "Medicion1": "10.1xyz"},
		},
	}
	mapping := types.ColumnMapping{Part: "Parte", Operator: "Operador", Measurements: []string{"Medicion1"}}

	_, err := Reshape(table, mapping)
	require.NotNil(t, err)
}
