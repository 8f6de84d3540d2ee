// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package capability

import (
	"fmt"
	"math"
	"sort"

	"github.com/andescore/qcstat/internal/config"
	"github.com/andescore/qcstat/internal/distfit"
	"github.com/andescore/qcstat/pkg/types"
	"gonum.org/v1/gonum/stat"
)

// ValidateSpecLimits requires finite lei < les (spec.md §4.7). No
// partial indices are computed when validation fails.
func ValidateSpecLimits(lei, les float64) error {
	if math.IsNaN(lei) || math.IsInf(lei, 0) || math.IsNaN(les) || math.IsInf(les, 0) {
		return fmt.Errorf("los límites de especificación deben ser valores finitos")
	}
	if lei >= les {
		return fmt.Errorf("el límite inferior (LEI=%v) debe ser menor que el límite superior (LES=%v)", lei, les)
	}
	return nil
}

// Analyze computes Cp/Cpk/Pp/Ppk and the associated PPM estimate.
// sigmaWithin is derived from the I-MR moving-range-bar/d2 estimate
// (spec.md §4.7); fitted, when non-nil, enables the non-normal
// percentile method using the distribution fit from the normality
// orchestrator's fallback path.
func Analyze(values []float64, sigmaWithin float64, lei, les float64, fitted *distfit.Fit, thresholds config.ClassificationThresholds) types.CapabilityResult {
	mean := stat.Mean(values, nil)
	sigmaOverall := 0.0
	if len(values) >= 2 {
		sigmaOverall = stat.StdDev(values, nil)
	}

	result := types.CapabilityResult{
		SigmaWithin:  sigmaWithin,
		SigmaOverall: sigmaOverall,
		Mean:         mean,
		LEI:          lei,
		LES:          les,
		Method:       types.CapabilityNormal,
	}

	result.Cp, result.Cpu, result.Cpl, result.Cpk = shortTermIndices(mean, sigmaWithin, lei, les)
	result.Pp, result.Ppu, result.Ppl, result.Ppk = shortTermIndices(mean, sigmaOverall, lei, les)

	result.PPM = NormalPPM(mean, sigmaOverall, lei, les)

	if fitted != nil && !fitted.Degenerate && !math.IsInf(fitted.ADStatistic, 1) {
		result.Method = types.CapabilityNonNormal
		applyNonNormal(&result, values, *fitted, lei, les)
	}

	result.CpkClassification = Classify(result.Cpk, thresholds)
	result.PpkClassification = Classify(result.Ppk, thresholds)

	return result
}

// shortTermIndices computes {index, cpu, cpl, cpk} for a given sigma
// estimate, returning all-nil when sigma <= 0 (spec.md §4.7 invariant).
func shortTermIndices(mean, sigma, lei, les float64) (index, upper, lower, k *float64) {
	if sigma <= 0 {
		return nil, nil, nil, nil
	}
	cp := (les - lei) / (6 * sigma)
	cpu := (les - mean) / (3 * sigma)
	cpl := (mean - lei) / (3 * sigma)
	cpk := math.Min(cpu, cpl)
	return &cp, &cpu, &cpl, &cpk
}

// applyNonNormal overwrites Pp/Ppk with the empirical-percentile
// method and the PPM estimate with the fitted family's CDF, per
// spec.md §4.7's non-normal path. The normal indices (Cp/Cpk) are left
// untouched; the source reports both side by side.
func applyNonNormal(result *types.CapabilityResult, values []float64, fitted distfit.Fit, lei, les float64) {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	p0135, p50, p99865 := EmpiricalPercentiles(sorted)

	spread := p99865 - p0135
	if spread > 0 {
		pp := (les - lei) / spread
		ppuDen := p99865 - p50
		pplDen := p50 - p0135
		var ppk float64
		switch {
		case ppuDen > 0 && pplDen > 0:
			ppk = math.Min((les-p50)/ppuDen, (p50-lei)/pplDen)
		case ppuDen > 0:
			ppk = (les - p50) / ppuDen
		case pplDen > 0:
			ppk = (p50 - lei) / pplDen
		default:
			result.Pp = &pp
			return
		}
		result.Pp = &pp
		result.Ppk = &ppk
	}

	result.PPM = NonNormalPPM(fitted.CDFAt, lei, les)
}
