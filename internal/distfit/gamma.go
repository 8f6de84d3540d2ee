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

// fitGamma estimates shape alpha and scale beta by method of moments:
// alpha = mean^2/var, beta = var/mean, both bounded to positive
// (spec.md §4.5). Requires all x > 0.
func fitGamma(x []float64) Fit {
	for _, v := range x {
		if v <= 0 {
			return Fit{Distribution: "gamma", ADStatistic: math.Inf(1), AIC: math.Inf(1)}
		}
	}

	mean := stat.Mean(x, nil)
	variance := stat.Variance(x, nil)
	if mean <= 0 || variance <= 0 {
		return Fit{Distribution: "gamma", ADStatistic: math.Inf(1), AIC: math.Inf(1)}
	}

	alpha := mean * mean / variance
	beta := variance / mean
	if alpha <= 0 || beta <= 0 || math.IsNaN(alpha) || math.IsNaN(beta) {
		return Fit{Distribution: "gamma", ADStatistic: math.Inf(1), AIC: math.Inf(1)}
	}

	cdf := gammaCDF(alpha, beta)
	ad := adFromCDF(x, cdf)
	ll := gammaLogLikelihood(x, alpha, beta)

	return Fit{
		Distribution: "gamma",
		Params:       []float64{alpha, beta},
		ADStatistic:  ad,
		AIC:          aic(ll, 2),
		cdf:          cdf,
	}
}

func gammaCDF(alpha, beta float64) CDF {
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		p, err := numerics.RegularizedIncompleteGamma(alpha, x/beta)
		if err != nil {
			return 0
		}
		return p
	}
}

func gammaLogLikelihood(x []float64, alpha, beta float64) float64 {
	n := float64(len(x))
	logGammaAlpha, err := numerics.LogGamma(alpha)
	if err != nil {
		return math.Inf(-1)
	}
	var sumLogX, sumX float64
	for _, v := range x {
		sumLogX += math.Log(v)
		sumX += v
	}
	return (alpha-1)*sumLogX - sumX/beta - n*alpha*math.Log(beta) - n*logGammaAlpha
}
