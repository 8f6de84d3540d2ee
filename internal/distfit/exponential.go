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

// fitExponential estimates the rate lambda = 1/mean (spec.md §4.5).
// Requires all x > 0.
func fitExponential(x []float64) Fit {
	for _, v := range x {
		if v <= 0 {
			return Fit{Distribution: "exponential", ADStatistic: math.Inf(1), AIC: math.Inf(1)}
		}
	}

	mean := stat.Mean(x, nil)
	if mean <= 0 {
		return Fit{Distribution: "exponential", ADStatistic: math.Inf(1), AIC: math.Inf(1)}
	}
	lambda := 1 / mean

	cdf := exponentialCDF(lambda)
	ad := adFromCDF(x, cdf)
	ll := exponentialLogLikelihood(x, lambda)

	return Fit{
		Distribution: "exponential",
		Params:       []float64{lambda},
		ADStatistic:  ad,
		AIC:          aic(ll, 1),
		cdf:          cdf,
	}
}

func exponentialCDF(lambda float64) CDF {
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		return 1 - math.Exp(-lambda*x)
	}
}

func exponentialLogLikelihood(x []float64, lambda float64) float64 {
	n := float64(len(x))
	var sumX float64
	for _, v := range x {
		sumX += v
	}
	return n*math.Log(lambda) - lambda*sumX
}
