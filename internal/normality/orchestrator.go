// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package normality

import (
	"sort"

	"github.com/andescore/qcstat/internal/distfit"
	"github.com/andescore/qcstat/pkg/types"
)

// AnalyzeNormality runs the original-data Anderson-Darling test and,
// on failure, attempts Box-Cox then Johnson-SU, returning the first
// successful series tagged with the method used (spec.md §4.4). When
// none succeed, the original A-D result is returned with
// method='none', and the attempted Box-Cox parameters are still
// recorded for diagnostics (SPEC_FULL.md's Attempts expansion field).
func AnalyzeNormality(x []float64) types.NormalityResult {
	original := AndersonDarlingNormal(x)
	if original.IsNormal {
		return types.NormalityResult{
			IsNormal:    true,
			ADStatistic: original.Statistic,
			PValue:      original.PValue,
			Conclusion:  "Los datos originales siguen una distribución normal.",
			Method:      types.NormalityOriginal,
		}
	}

	boxCox := FitBoxCox(x)
	if boxCox.AD.IsNormal {
		return types.NormalityResult{
			IsNormal:    true,
			ADStatistic: boxCox.AD.Statistic,
			PValue:      boxCox.AD.PValue,
			Conclusion:  "Los datos siguen una distribución normal tras la transformación Box-Cox.",
			Method:      types.NormalityBoxCox,
			Transformation: &types.TransformationInfo{
				Name:         types.NormalityBoxCox,
				BoxCoxLambda: boxCox.Lambda,
			},
		}
	}

	johnson := FitJohnsonSU(x)
	if johnson.AD.IsNormal {
		return types.NormalityResult{
			IsNormal:    true,
			ADStatistic: johnson.AD.Statistic,
			PValue:      johnson.AD.PValue,
			Conclusion:  "Los datos siguen una distribución normal tras la transformación Johnson-SU.",
			Method:      types.NormalityJohnsonSU,
			Transformation: &types.TransformationInfo{
				Name:          types.NormalityJohnsonSU,
				Xi:            johnson.Xi,
				Gamma:         johnson.Gamma,
				Delta:         johnson.Delta,
				JohnsonLambda: johnson.Lambda,
			},
		}
	}

	result := types.NormalityResult{
		IsNormal:    false,
		ADStatistic: original.Statistic,
		PValue:      original.PValue,
		Conclusion:  "Los datos no siguen una distribución normal bajo ninguna transformación intentada.",
		Method:      types.NormalityNone,
		Transformation: &types.TransformationInfo{
			Name:         types.NormalityBoxCox,
			BoxCoxLambda: boxCox.Lambda,
		},
		Attempts: []types.TransformationInfo{
			{Name: types.NormalityBoxCox, BoxCoxLambda: boxCox.Lambda},
			{Name: types.NormalityJohnsonSU, Xi: johnson.Xi, Gamma: johnson.Gamma, Delta: johnson.Delta, JohnsonLambda: johnson.Lambda},
		},
	}

	best := distfit.BestFit(x, distfit.FitAll(x))
	result.FittedDistribution = &types.FittedDistribution{
		Distribution: best.Distribution,
		Params:       best.Params,
		ADStatistic:  best.ADStatistic,
		AIC:          best.AIC,
		Degenerate:   best.Degenerate,
	}
	return result
}

// FitBestDistribution exposes the distribution-fitting fallback used
// when no normality transformation succeeds, so the capability engine
// can obtain a fitted CDF for non-normal PPM integration (spec.md §4.7).
// It refits all families from x on every call.
func FitBestDistribution(x []float64) distfit.Fit {
	return distfit.BestFit(x, distfit.FitAll(x))
}

// PlottingPositions returns the Blom plotting positions p_i =
// (i-0.375)/(n+0.25) for i=1..n (spec.md §4.8, used by the Q-Q chart).
func PlottingPositions(n int) []float64 {
	p := make([]float64, n)
	nf := float64(n)
	for i := 0; i < n; i++ {
		p[i] = (float64(i+1) - 0.375) / (nf + 0.25)
	}
	return p
}

// SortedCopy returns x sorted ascending, leaving the input untouched.
func SortedCopy(x []float64) []float64 {
	out := append([]float64(nil), x...)
	sort.Float64s(out)
	return out
}
