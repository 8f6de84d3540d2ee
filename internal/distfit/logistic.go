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

// fitLogistic estimates location mu = mean and scale
// s = sqrt(3*var)/pi (spec.md §4.5).
func fitLogistic(x []float64) Fit {
	mean := stat.Mean(x, nil)
	variance := stat.Variance(x, nil)
	s := math.Sqrt(3*variance) / math.Pi
	if s <= 0 || math.IsNaN(s) {
		return Fit{Distribution: "logistic", ADStatistic: math.Inf(1), AIC: math.Inf(1)}
	}

	cdf := logisticCDF(mean, s)
	ad := adFromCDF(x, cdf)
	ll := logisticLogLikelihood(x, mean, s)

	return Fit{
		Distribution: "logistic",
		Params:       []float64{mean, s},
		ADStatistic:  ad,
		AIC:          aic(ll, 2),
		cdf:          cdf,
	}
}

// logisticCDF uses the numerically stable form: for z>=0,
// 1/(1+exp(-z)); for z<0, exp(z)/(1+exp(z)) (spec.md §4.5).
func logisticCDF(mu, s float64) CDF {
	return func(x float64) float64 {
		z := (x - mu) / s
		if z >= 0 {
			return 1 / (1 + math.Exp(-z))
		}
		ez := math.Exp(z)
		return ez / (1 + ez)
	}
}

func logisticLogLikelihood(x []float64, mu, s float64) float64 {
	var sum float64
	for _, v := range x {
		z := (v - mu) / s
		softplusNegZ := math.Max(-z, 0) + math.Log(1+math.Exp(-math.Abs(z)))
		sum += -z - 2*softplusNegZ - math.Log(s)
	}
	return sum
}
