// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package normality

import "math"

// BoxCoxResult is the best-scoring Box-Cox transformation found by the
// lambda grid search, together with the Anderson-Darling result on the
// transformed data (spec.md §4.4).
type BoxCoxResult struct {
	Lambda float64
	Shift  float64
	AD     ADResult
	Values []float64
}

// FitBoxCox grid-searches lambda in {-2.0, -1.9, ..., 2.0}, scoring
// each candidate transform by its Anderson-Darling A²* and keeping the
// best (lowest-statistic) one. Values with min(x) <= 0 are shifted by
// |min|+1 first so the power transform stays well-defined.
func FitBoxCox(x []float64) BoxCoxResult {
	shift := 0.0
	minVal := math.Inf(1)
	for _, v := range x {
		if v < minVal {
			minVal = v
		}
	}
	if minVal <= 0 {
		shift = math.Abs(minVal) + 1
	}

	shifted := make([]float64, len(x))
	for i, v := range x {
		shifted[i] = v + shift
	}

	best := BoxCoxResult{AD: ADResult{Statistic: math.Inf(1), PValue: 0}}
	found := false

	for step := -20; step <= 20; step++ {
		lambda := float64(step) / 10
		transformed, ok := applyBoxCox(shifted, lambda)
		if !ok {
			continue
		}
		ad := AndersonDarlingNormal(transformed)
		if !found || ad.Statistic < best.AD.Statistic {
			best = BoxCoxResult{Lambda: lambda, Shift: shift, AD: ad, Values: transformed}
			found = true
		}
	}

	return best
}

// applyBoxCox evaluates the Box-Cox power transform at the given
// lambda; ok is false if any resulting value is non-finite.
func applyBoxCox(x []float64, lambda float64) ([]float64, bool) {
	y := make([]float64, len(x))
	for i, v := range x {
		if math.Abs(lambda) < 0.01 {
			y[i] = math.Log(v)
		} else {
			y[i] = (math.Pow(v, lambda) - 1) / lambda
		}
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return nil, false
		}
	}
	return y, true
}
