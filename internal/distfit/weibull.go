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

// fitWeibull estimates shape k via Newton-Raphson on the MLE profile
// likelihood (clamped to [0.1, 20]) and scale lambda = (mean(x^k))^(1/k)
// (spec.md §4.5). Requires all x > 0.
func fitWeibull(x []float64) Fit {
	for _, v := range x {
		if v <= 0 {
			return Fit{Distribution: "weibull", ADStatistic: math.Inf(1), AIC: math.Inf(1)}
		}
	}

	cv := coefficientOfVariation(x)
	k := initialWeibullShape(cv)

	for iter := 0; iter < 100; iter++ {
		g, gp := weibullProfileDerivatives(x, k)
		if gp == 0 || math.IsNaN(gp) {
			break
		}
		next := k - g/gp
		if math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		next = clampFloat(next, 0.1, 20)
		if math.Abs(next-k) < 1e-8 {
			k = next
			break
		}
		k = next
	}
	k = clampFloat(k, 0.1, 20)

	var sumXk float64
	for _, v := range x {
		sumXk += math.Pow(v, k)
	}
	meanXk := sumXk / float64(len(x))
	lambda := math.Pow(meanXk, 1/k)
	if lambda <= 0 || math.IsNaN(lambda) {
		return Fit{Distribution: "weibull", ADStatistic: math.Inf(1), AIC: math.Inf(1)}
	}

	cdf := weibullCDF(k, lambda)
	ad := adFromCDF(x, cdf)
	ll := weibullLogLikelihood(x, k, lambda)

	return Fit{
		Distribution: "weibull",
		Params:       []float64{k, lambda},
		ADStatistic:  ad,
		AIC:          aic(ll, 2),
		cdf:          cdf,
	}
}

func weibullCDF(k, lambda float64) CDF {
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		return 1 - math.Exp(-math.Pow(x/lambda, k))
	}
}

func weibullLogLikelihood(x []float64, k, lambda float64) float64 {
	n := float64(len(x))
	var sumLogX, sumXkScaled float64
	for _, v := range x {
		sumLogX += math.Log(v)
		sumXkScaled += math.Pow(v/lambda, k)
	}
	return n*math.Log(k) - n*k*math.Log(lambda) + (k-1)*sumLogX - sumXkScaled
}

// weibullProfileDerivatives returns the profile log-likelihood
// derivative (and its derivative) with respect to k, at fixed implied
// lambda, for the Newton-Raphson shape search.
func weibullProfileDerivatives(x []float64, k float64) (g, gp float64) {
	n := float64(len(x))
	var sumXk, sumXkLnX, sumXkLnX2, sumLnX float64
	for _, v := range x {
		lv := math.Log(v)
		xk := math.Pow(v, k)
		sumXk += xk
		sumXkLnX += xk * lv
		sumXkLnX2 += xk * lv * lv
		sumLnX += lv
	}

	g = n/k + sumLnX - n*sumXkLnX/sumXk
	gp = -n/(k*k) - n*((sumXkLnX2*sumXk-sumXkLnX*sumXkLnX)/(sumXk*sumXk))
	return g, gp
}

func initialWeibullShape(cv float64) float64 {
	switch {
	case cv < 0.3:
		return 4.0
	case cv < 0.6:
		return 2.5
	case cv < 1.0:
		return 1.5
	default:
		return 1.0
	}
}

func coefficientOfVariation(x []float64) float64 {
	mean := stat.Mean(x, nil)
	if mean == 0 {
		return 0
	}
	std := stat.StdDev(x, nil)
	return std / math.Abs(mean)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
