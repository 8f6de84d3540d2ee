// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package distfit

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// eulerMascheroni is gamma_E, used to back out the Gumbel location
// from the mean (spec.md §4.5).
const eulerMascheroni = 0.5772156649015329

// fitGumbel estimates scale beta = sqrt(6*var)/pi and location
// mu = mean - gamma_E*beta (spec.md §4.5).
func fitGumbel(x []float64) Fit {
	mean := stat.Mean(x, nil)
	variance := stat.Variance(x, nil)
	beta := math.Sqrt(6*variance) / math.Pi
	if beta <= 0 || math.IsNaN(beta) {
		return Fit{Distribution: "gumbel", ADStatistic: math.Inf(1), AIC: math.Inf(1)}
	}
	mu := mean - eulerMascheroni*beta

	cdf := gumbelCDF(mu, beta)
	ad := adFromCDF(x, cdf)
	ll := gumbelLogLikelihood(x, mu, beta)

	return Fit{
		Distribution: "gumbel",
		Params:       []float64{mu, beta},
		ADStatistic:  ad,
		AIC:          aic(ll, 2),
		cdf:          cdf,
	}
}

func gumbelCDF(mu, beta float64) CDF {
	return func(x float64) float64 {
		z := (x - mu) / beta
		return math.Exp(-math.Exp(-z))
	}
}

func gumbelLogLikelihood(x []float64, mu, beta float64) float64 {
	var sum float64
	for _, v := range x {
		z := (v - mu) / beta
		sum += -z - math.Exp(-z) - math.Log(beta)
	}
	return sum
}
