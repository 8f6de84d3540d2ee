// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package capability computes Cp/Cpk/Pp/Ppk process-capability indices,
// their classification, and parts-per-million defect-rate estimates,
// including the non-normal percentile-based variant (spec.md §4.7).
package capability

import (
	"math"

	"github.com/andescore/qcstat/internal/config"
	"github.com/andescore/qcstat/pkg/types"
)

// Classify applies the spec.md §4.7 threshold table to a Cpk/Ppk
// index. A nil or NaN index classifies as unknown.
func Classify(index *float64, thresholds config.ClassificationThresholds) types.Classification {
	if index == nil || math.IsNaN(*index) {
		return types.ClassUnknown
	}
	v := *index
	switch {
	case v >= thresholds.CpExcellent:
		return types.ClassExcellent
	case v >= thresholds.CpAdequate:
		return types.ClassAdequate
	case v >= thresholds.CpMarginal:
		return types.ClassMarginal
	case v >= thresholds.CpInadequate:
		return types.ClassInadequate
	default:
		return types.ClassPoor
	}
}
