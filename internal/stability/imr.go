// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package stability computes I-MR (Individuals / Moving-Range)
// control-chart limits and the seven Western-Electric-style stability
// rules (spec.md §4.6).
package stability

import (
	"math"

	"github.com/andescore/qcstat/internal/config"
	"github.com/andescore/qcstat/pkg/types"
)

// MovingRanges returns MR_i = |x_{i+1} - x_i| for i=1..n-1.
func MovingRanges(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}
	mr := make([]float64, len(x)-1)
	for i := 1; i < len(x); i++ {
		mr[i-1] = math.Abs(x[i] - x[i-1])
	}
	return mr
}

func mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// Analyze builds the full I-MR stability result: the I-chart, the
// MR-chart, the seven rule outcomes, and within-subgroup sigma
// (spec.md §4.6), using module-level AIAG subgroup-size-2 constants.
func Analyze(x []float64) types.StabilityResult {
	return AnalyzeWithConstants(x, config.DefaultAnalysisConfig().ControlChart)
}

// AnalyzeWithConstants is Analyze using constants' E2/D4/D3/D2 in place
// of the module defaults (spec.md §9).
func AnalyzeWithConstants(x []float64, constants config.ControlChartConstants) types.StabilityResult {
	mr := MovingRanges(x)
	xbar := mean(x)
	mrBar := mean(mr)

	iChart := types.ControlChart{
		Values: x,
		Center: xbar,
		UCL:    xbar + constants.E2*mrBar,
		LCL:    xbar - constants.E2*mrBar,
		MRBar:  mrBar,
	}
	mrChart := types.ControlChart{
		Values: mr,
		Center: mrBar,
		UCL:    constants.D4 * mrBar,
		LCL:    constants.D3 * mrBar,
	}

	iChart.OOCPoints = outOfControlPoints(x, iChart.LCL, iChart.UCL)
	mrChart.OOCPoints = outOfControlPoints(mr, mrChart.LCL, mrChart.UCL)

	sigma := 0.0
	if mrBar > 0 {
		sigma = mrBar / constants.D2
	}

	rules := EvaluateRules(x, iChart.Center, iChart.UCL, iChart.LCL)

	isStable := rules.Rule1.Cumple && rules.Rule2.Cumple && rules.Rule3.Cumple &&
		rules.Rule4.Cumple && rules.Rule5.Cumple && rules.Rule6.Cumple && rules.Rule7.Cumple &&
		len(iChart.OOCPoints) == 0 && len(mrChart.OOCPoints) == 0

	conclusion := "El proceso se encuentra en control estadístico."
	if !isStable {
		conclusion = "El proceso presenta señales de inestabilidad estadística."
	}

	return types.StabilityResult{
		IsStable:   isStable,
		Conclusion: conclusion,
		IChart:     iChart,
		MRChart:    mrChart,
		Rules:      rules,
		Sigma:      sigma,
	}
}

func outOfControlPoints(x []float64, lcl, ucl float64) []types.ChartPoint {
	var points []types.ChartPoint
	for i, v := range x {
		if v > ucl || v < lcl {
			points = append(points, types.ChartPoint{Index: i, Value: v})
		}
	}
	return points
}
