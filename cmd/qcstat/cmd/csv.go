// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	rangeutils "github.com/andescore/qcstat/internal/utils"
	"github.com/andescore/qcstat/pkg/types"
	"github.com/andescore/qcstat/pkg/utils"
)

// loadTable reads filename as a CSV file with a header row and decodes
// it into a types.Table. Each cell is parsed as float64 when possible
// (accepting "," as a decimal separator, like the validators do) and
// kept as a trimmed string otherwise; the validators are the ones that
// ultimately decide whether a column is usable. excludeRows is an
// optional 1-based, comma/range spreadsheet notation ("3,7-9") of data
// rows to drop before analysis.
func loadTable(filename string, excludeRows string) (types.Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return types.Table{}, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return types.Table{}, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 2 {
		return types.Table{}, fmt.Errorf("%s has no data rows", filename)
	}

	headers := records[0]
	dataRows := records[1:]

	excluded := map[int]bool{}
	if excludeRows != "" {
		idx, err := rangeutils.ParseRanges(excludeRows)
		if err != nil {
			return types.Table{}, fmt.Errorf("invalid --exclude-rows: %w", err)
		}
		for _, i := range idx {
			excluded[i] = true
		}
	}

	rows := make([]map[string]any, 0, len(dataRows))
	for i, record := range dataRows {
		if excluded[i] {
			continue
		}
		row := make(map[string]any, len(headers))
		for j, h := range headers {
			if j >= len(record) {
				continue
			}
			row[h] = parseCell(record[j])
		}
		rows = append(rows, row)
	}

	return types.Table{Headers: headers, Rows: rows}, nil
}

// parseCell decodes one raw CSV field into a float64 when it parses as
// a number (accepting a comma decimal separator), and leaves it as a
// trimmed string otherwise.
func parseCell(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	if f, err := utils.ParseNumericValue(trimmed, '.'); err == nil {
		return f
	}
	if f, err := utils.ParseNumericValue(trimmed, ','); err == nil {
		return f
	}
	return trimmed
}
