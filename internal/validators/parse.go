// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package validators implements the MSA and Capability validators:
// schema + type validation for each analysis family (spec.md §4.2).
// Each validator returns either an immutable typed handle or a
// structured types.QCError; it never panics on malformed user data.
package validators

import (
	"strconv"

	"github.com/andescore/qcstat/pkg/utils"
)

// coerceNumeric accepts int, float64, or a string parseable after
// strip() and comma->dot replacement, per spec.md §3/§4.2. ok is false
// when the cell is not numeric in any of those forms.
func coerceNumeric(cell any) (value float64, ok bool) {
	switch v := cell.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, missing, err := utils.ParseNumericValueWithMissing(v, ',', utils.DefaultMissingValues())
		if missing || err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// isBlank reports whether a cell is empty/missing: an absent key,
// nil, or a blank/whitespace-only string, per the same indicators
// ParseNumericValueWithMissing uses when a table is decoded.
func isBlank(cell any, present bool) bool {
	if !present || cell == nil {
		return true
	}
	if s, isStr := cell.(string); isStr {
		return utils.IsMissingValue(s, utils.DefaultMissingValues())
	}
	return false
}

// cellString renders a cell for inclusion in an error's Details, as
// the raw value would have appeared in the source table.
func cellString(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return strconv.FormatFloat(toFloatBestEffort(v), 'g', -1, 64)
	}
}

func toFloatBestEffort(v any) float64 {
	f, _ := coerceNumeric(v)
	return f
}

// spreadsheetColumn converts a 0-based column index into spreadsheet
// letter notation (0 -> "A", 25 -> "Z", 26 -> "AA"), per spec.md §4.2's
// "report up to 20 cells in spreadsheet notation".
func spreadsheetColumn(index int) string {
	letters := ""
	n := index
	for {
		letters = string(rune('A'+n%26)) + letters
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return letters
}
