// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package capability

import (
	"math"

	"github.com/andescore/qcstat/internal/numerics"
	"github.com/andescore/qcstat/pkg/types"
)

// NormalPPM computes the normal-theory defect-rate estimate using
// sigma_overall as the spread estimate (spec.md §4.7; the source's
// documented Ppk-aligned choice, preserved per spec.md §9 Open
// Questions). Zero-sigma data falls back to the 0/1e6 special case.
func NormalPPM(mean, sigma, lei, les float64) types.PPMResult {
	if sigma <= 0 {
		switch {
		case mean < lei:
			return types.PPMResult{Below: 1_000_000, Above: 0, Total: 1_000_000}
		case mean > les:
			return types.PPMResult{Below: 0, Above: 1_000_000, Total: 1_000_000}
		default:
			return types.PPMResult{}
		}
	}

	below := int64(math.Round(1e6 * numerics.NormalCDF((lei-mean)/sigma)))
	above := int64(math.Round(1e6 * (1 - numerics.NormalCDF((les-mean)/sigma))))
	return types.PPMResult{Below: below, Above: above, Total: below + above}
}

// NonNormalPPM evaluates the fitted family's CDF at the spec limits
// (spec.md §4.5, §4.7).
func NonNormalPPM(cdfAt func(float64) float64, lei, les float64) types.PPMResult {
	below := int64(math.Round(1e6 * cdfAt(lei)))
	above := int64(math.Round(1e6 * (1 - cdfAt(les))))
	return types.PPMResult{Below: below, Above: above, Total: below + above}
}

// EmpiricalPercentiles returns P_0.135, P_50, P_99.865 from the sorted
// sample, used by the non-normal Pp/Ppk percentile method (spec.md
// §4.7). x must be sorted ascending.
func EmpiricalPercentiles(sorted []float64) (p0135, p50, p99865 float64) {
	p0135 = percentile(sorted, 0.00135)
	p50 = percentile(sorted, 0.5)
	p99865 = percentile(sorted, 0.99865)
	return
}

// percentile uses linear interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
