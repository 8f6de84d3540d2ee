// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package normality implements the Anderson-Darling normality test
// with Box-Cox and Johnson-SU transformation fallbacks (spec.md §4.4).
package normality

import (
	"math"
	"sort"

	"github.com/andescore/qcstat/internal/numerics"
	"gonum.org/v1/gonum/stat"
)

const clipEpsilon = 1e-15

// ADResult is the outcome of one Anderson-Darling evaluation: the
// (Stephens-corrected) statistic, its p-value, and whether the tested
// series passes at the 0.05 level (spec.md §4.4).
type ADResult struct {
	Statistic float64
	PValue    float64
	IsNormal  bool
}

// AndersonDarlingNormal standardizes x and evaluates the Anderson-
// Darling statistic against the standard normal CDF, applying the
// Stephens small-sample correction (spec.md §4.4). Requires n >= 2;
// constant data (sample std == 0) returns {+Inf, 0, false}.
func AndersonDarlingNormal(x []float64) ADResult {
	n := len(x)
	if n < 2 {
		return ADResult{Statistic: math.Inf(1), PValue: 0, IsNormal: false}
	}

	mean := stat.Mean(x, nil)
	std := stat.StdDev(x, nil)
	if std <= 0 {
		return ADResult{Statistic: math.Inf(1), PValue: 0, IsNormal: false}
	}

	standardized := make([]float64, n)
	for i, v := range x {
		standardized[i] = (v - mean) / std
	}

	cdf := make([]float64, n)
	for i, z := range standardized {
		cdf[i] = numerics.NormalCDF(z)
	}

	return andersonDarlingFromCDF(cdf)
}

// andersonDarlingFromCDF evaluates the Anderson-Darling statistic from
// already-computed CDF values F(x_i) against an arbitrary reference
// distribution. Only the normal case above calls it; internal/distfit
// computes its family-fit A² with its own adFromCDF.
func andersonDarlingFromCDF(cdf []float64) ADResult {
	n := len(cdf)
	sorted := append([]float64(nil), cdf...)
	sort.Float64s(sorted)

	for i, v := range sorted {
		sorted[i] = clip(v, clipEpsilon, 1-clipEpsilon)
	}

	var s float64
	for i := 0; i < n; i++ {
		weight := float64(2*(i+1) - 1)
		s += weight * (math.Log(sorted[i]) + math.Log(1-sorted[n-1-i]))
	}

	nf := float64(n)
	a2 := -nf - s/nf
	aStar := a2 * (1 + 0.75/nf + 2.25/(nf*nf))

	p := adPValue(aStar)
	return ADResult{
		Statistic: aStar,
		PValue:    p,
		IsNormal:  p >= 0.05,
	}
}

// adPValue is the piecewise D'Agostino-Stephens (1986) approximation
// for the Anderson-Darling p-value, evaluated on the corrected
// statistic A²* (spec.md §4.4).
func adPValue(aStar float64) float64 {
	var p float64
	switch {
	case aStar <= 0:
		p = 1
	case aStar < 0.2:
		p = 1 - math.Exp(-13.436+101.14*aStar-223.73*aStar*aStar)
	case aStar < 0.34:
		p = 1 - math.Exp(-8.318+42.796*aStar-59.938*aStar*aStar)
	case aStar < 0.6:
		p = math.Exp(0.9177 - 4.279*aStar - 1.38*aStar*aStar)
	default:
		p = math.Exp(1.2937 - 5.709*aStar + 0.0186*aStar*aStar)
	}
	return clip(p, 0, 1)
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
