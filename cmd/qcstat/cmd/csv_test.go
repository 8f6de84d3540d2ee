// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTableParsesNumericAndStringCells(t *testing.T) {
	path := writeCSV(t, "Parte,Operador,Medicion\n1,A,10.5\n2,B,9.1\n")
	table, err := loadTable(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Parte", "Operador", "Medicion"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "A", table.Rows[0]["Operador"])
	assert.Equal(t, 10.5, table.Rows[0]["Medicion"])
}

func TestParseCellHandlesCommaDecimal(t *testing.T) {
	assert.Equal(t, 9.8, parseCell("9,8"))
	assert.Equal(t, 10.0, parseCell("10"))
	assert.Equal(t, "abc", parseCell(" abc "))
}

func TestLoadTableExcludesRows(t *testing.T) {
	path := writeCSV(t, "Valores\n1\n2\n3\n")
	table, err := loadTable(path, "2")
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, 1.0, table.Rows[0]["Valores"])
	assert.Equal(t, 3.0, table.Rows[1]["Valores"])
}

func TestLoadTableRejectsMissingFile(t *testing.T) {
	_, err := loadTable("/nonexistent/data.csv", "")
	assert.Error(t, err)
}

func TestLoadTableRejectsEmptyFile(t *testing.T) {
	path := writeCSV(t, "Parte,Operador\n")
	_, err := loadTable(path, "")
	assert.Error(t, err)
}
