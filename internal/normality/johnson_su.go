// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package normality

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// JohnsonSUResult is the refined Johnson-SU fit and its Anderson-
// Darling evaluation (spec.md §4.4).
type JohnsonSUResult struct {
	Xi     float64
	Lambda float64
	Gamma  float64
	Delta  float64
	AD     ADResult
}

// FitJohnsonSU moment-matches initial (xi, lambda, gamma, delta)
// parameters, then locally refines (gamma, delta) over a 5x5 grid,
// keeping xi and lambda fixed at their moment-matched values (spec.md
// §4.4, preserved deliberately — see DESIGN.md open-question notes).
func FitJohnsonSU(x []float64) JohnsonSUResult {
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	xi := median(sorted)
	lambda := iqr(sorted) / 1.35
	if lambda <= 0 {
		lambda = 1
	}

	skew := stat.Skew(x, nil)
	kurt := stat.ExKurtosis(x, nil) + 3 // stat.ExKurtosis is excess; JSU moment-matching wants raw kurtosis

	delta := kurtosisToDelta(kurt)
	gamma := -0.5 * skew * delta

	z := johnsonTransform(x, xi, lambda, gamma, delta)
	best := JohnsonSUResult{Xi: xi, Lambda: lambda, Gamma: gamma, Delta: delta, AD: AndersonDarlingNormal(z)}

	for dg := -1.0; dg <= 1.0; dg += 0.5 {
		for dd := -0.5; dd <= 0.5; dd += 0.25 {
			g := gamma + dg
			d := delta + dd
			if d <= 0 {
				continue
			}
			z := johnsonTransform(x, xi, lambda, g, d)
			ad := AndersonDarlingNormal(z)
			if ad.Statistic < best.AD.Statistic {
				best = JohnsonSUResult{Xi: xi, Lambda: lambda, Gamma: g, Delta: d, AD: ad}
			}
		}
	}

	return best
}

// johnsonTransform applies z = gamma + delta*asinh((x-xi)/lambda).
func johnsonTransform(x []float64, xi, lambda, gamma, delta float64) []float64 {
	z := make([]float64, len(x))
	for i, v := range x {
		y := (v - xi) / lambda
		z[i] = gamma + delta*asinh(y)
	}
	return z
}

func asinh(y float64) float64 {
	return math.Log(y + math.Sqrt(y*y+1))
}

// kurtosisToDelta maps sample kurtosis to an initial delta estimate,
// bounded to [0.1, 3] (spec.md §4.4).
func kurtosisToDelta(kurtosis float64) float64 {
	delta := 1.0
	if kurtosis > 3 {
		delta = 1.0 / math.Sqrt(math.Log(kurtosis/3))
		if math.IsNaN(delta) || math.IsInf(delta, 0) {
			delta = 1.0
		}
	}
	if delta < 0.1 {
		delta = 0.1
	}
	if delta > 3 {
		delta = 3
	}
	return delta
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func iqr(sorted []float64) float64 {
	q1 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	q3 := stat.Quantile(0.75, stat.Empirical, sorted, nil)
	return q3 - q1
}
