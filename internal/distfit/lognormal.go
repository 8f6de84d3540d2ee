// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package distfit

import (
	"math"

	"github.com/andescore/qcstat/internal/numerics"
	"gonum.org/v1/gonum/stat"
)

// fitLognormal estimates mu = mean(ln x), sigma = std(ln x) (floored
// at 0.001) over the positive support (spec.md §4.5).
func fitLognormal(x []float64) Fit {
	for _, v := range x {
		if v <= 0 {
			return Fit{Distribution: "lognormal", ADStatistic: math.Inf(1), AIC: math.Inf(1)}
		}
	}

	logs := make([]float64, len(x))
	for i, v := range x {
		logs[i] = math.Log(v)
	}
	mu := stat.Mean(logs, nil)
	sigma := stat.StdDev(logs, nil)
	if sigma < 0.001 {
		sigma = 0.001
	}

	cdf := lognormalCDF(mu, sigma)
	ad := adFromCDF(x, cdf)

	n := float64(len(x))
	var sumLogX float64
	for _, lv := range logs {
		sumLogX += lv
	}
	ll := -n*math.Log(sigma) - n/2*math.Log(2*math.Pi) - sumLogX - sumSquaredDeviation(logs, mu)/(2*sigma*sigma)

	return Fit{
		Distribution: "lognormal",
		Params:       []float64{mu, sigma},
		ADStatistic:  ad,
		AIC:          aic(ll, 2),
		cdf:          cdf,
	}
}

func lognormalCDF(mu, sigma float64) CDF {
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		return numerics.NormalCDF((math.Log(x) - mu) / sigma)
	}
}

func sumSquaredDeviation(x []float64, mean float64) float64 {
	var s float64
	for _, v := range x {
		d := v - mean
		s += d * d
	}
	return s
}
