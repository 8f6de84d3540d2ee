// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package distfit fits six continuous distribution families (Weibull,
// Lognormal, Gamma, Exponential, Logistic, Gumbel) to a data series,
// scores each by the Anderson-Darling statistic and AIC, and selects
// the best fit (spec.md §4.5).
package distfit

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// CDF evaluates a fitted distribution's cumulative distribution
// function at x.
type CDF func(x float64) float64

// Fit is the result of fitting one family to a data series.
type Fit struct {
	Distribution string
	Params       []float64
	ADStatistic  float64
	AIC          float64
	Degenerate   bool
	cdf          CDF
}

// CDFAt evaluates the fitted distribution's CDF, used for PPM
// integration (spec.md §4.5).
func (f Fit) CDFAt(x float64) float64 {
	if f.cdf == nil {
		return 0
	}
	return f.cdf(x)
}

// familyFitter fits one family and returns its Fit (ad_statistic =
// +Inf on failure, per spec.md §4.5).
type familyFitter func(x []float64) Fit

var families = []familyFitter{
	fitWeibull,
	fitLognormal,
	fitGamma,
	fitExponential,
	fitLogistic,
	fitGumbel,
}

// adFromCDF evaluates the Anderson-Darling statistic (no Stephens
// correction) for a fitted CDF applied to sorted data (spec.md §4.5).
func adFromCDF(x []float64, cdf CDF) float64 {
	n := len(x)
	if n < 2 {
		return math.Inf(1)
	}
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	u := make([]float64, n)
	for i, v := range sorted {
		u[i] = clip01(cdf(v))
	}

	var s float64
	for i := 0; i < n; i++ {
		weight := float64(2*(i+1) - 1)
		s += weight * (math.Log(u[i]) + math.Log(1-u[n-1-i]))
	}
	nf := float64(n)
	a2 := -nf - s/nf
	if math.IsNaN(a2) || math.IsInf(a2, 0) {
		return math.Inf(1)
	}
	return a2
}

func clip01(v float64) float64 {
	const eps = 1e-12
	if v < eps {
		return eps
	}
	if v > 1-eps {
		return 1 - eps
	}
	return v
}

// FitAll fits every family in parallel (each fit only reads the shared
// x, so fan-out is safe, per spec.md §9's "parallelize
// independent fits" note) and returns all six results, in the order
// declared by the families table.
func FitAll(x []float64) []Fit {
	results := make([]Fit, len(families))
	done := make(chan struct{}, len(families))

	for i, fitter := range families {
		go func(i int, fitter familyFitter) {
			defer func() { done <- struct{}{} }()
			results[i] = fitter(x)
		}(i, fitter)
	}
	for range families {
		<-done
	}
	return results
}

// BestFit filters out infinite-A² results and returns the one with
// the lowest A², falling back to a degenerate Lognormal fit over x
// when none succeed (spec.md §4.5).
func BestFit(x []float64, fits []Fit) Fit {
	var candidates []Fit
	for _, f := range fits {
		if !math.IsInf(f.ADStatistic, 1) {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		return degenerateLognormal(x)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ADStatistic < candidates[j].ADStatistic
	})
	return candidates[0]
}

func degenerateLognormal(x []float64) Fit {
	mu := 0.0
	if len(x) > 0 {
		logs := make([]float64, len(x))
		for i, v := range x {
			logs[i] = math.Log(math.Abs(v) + 1)
		}
		mu = stat.Mean(logs, nil)
	}
	sigma := 1.0
	return Fit{
		Distribution: "lognormal",
		Params:       []float64{mu, sigma},
		ADStatistic:  math.Inf(1),
		AIC:          math.Inf(1),
		Degenerate:   true,
		cdf:          lognormalCDF(mu, sigma),
	}
}

// aic is -2*logLikelihood + 2*k (spec.md §4.5).
func aic(logLikelihood float64, k int) float64 {
	return -2*logLikelihood + 2*float64(k)
}

// PPMFromFit computes the defect-rate estimate for a known family's
// CDF evaluated at the spec limits (spec.md §4.5). Values at or below
// zero on positive-support families are treated as F(x)=0 by the
// individual CDF implementations themselves.
func PPMFromFit(f Fit, lei, les float64) (below, above, total int64) {
	below = int64(math.Round(1e6 * f.CDFAt(lei)))
	above = int64(math.Round(1e6 * (1 - f.CDFAt(les))))
	total = below + above
	return
}
