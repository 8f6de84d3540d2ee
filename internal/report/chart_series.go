// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package report

import (
	"math"

	"github.com/andescore/qcstat/internal/normality"
	"github.com/andescore/qcstat/internal/numerics"
	"gonum.org/v1/gonum/stat"
)

// HistogramBin is one bin of the Process Capability histogram chart
// (spec.md §4.8).
type HistogramBin struct {
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
	Count      int     `json:"count"`
}

// buildHistogram bins values using the square-root rule for bin count
// (a common, deterministic default absent a library-specified binning
// rule in spec.md).
func buildHistogram(values []float64) []HistogramBin {
	n := len(values)
	if n == 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	bins := int(math.Ceil(math.Sqrt(float64(n))))
	if bins < 1 {
		bins = 1
	}
	width := (hi - lo) / float64(bins)
	if width <= 0 {
		return []HistogramBin{{LowerBound: lo, UpperBound: hi, Count: n}}
	}

	out := make([]HistogramBin, bins)
	for i := range out {
		out[i] = HistogramBin{LowerBound: lo + float64(i)*width, UpperBound: lo + float64(i+1)*width}
	}
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		out[idx].Count++
	}
	return out
}

// QQPoint is one plotted point of the normality Q-Q chart, with its
// 95% confidence band (spec.md §4.8).
type QQPoint struct {
	Theoretical float64 `json:"theoretical"`
	Observed    float64 `json:"observed"`
	FitValue    float64 `json:"fit_value"`
	BandLower   float64 `json:"band_lower"`
	BandUpper   float64 `json:"band_upper"`
}

// NormalityPlot is the full Q-Q chart payload: plotting positions,
// expected normal quantiles, an OLS fit line, and 95% bands (spec.md
// §4.8).
type NormalityPlot struct {
	Slope     float64   `json:"slope"`
	Intercept float64   `json:"intercept"`
	Points    []QQPoint `json:"points"`
}

// buildNormalityPlot computes Blom plotting positions, the expected
// normal quantiles, an OLS fit line, and the 95% confidence bands
// (spec.md §4.8). sorted must already be sorted ascending.
func buildNormalityPlot(sorted []float64) NormalityPlot {
	n := len(sorted)
	positions := normality.PlottingPositions(n)

	z := make([]float64, n)
	for i, p := range positions {
		zi, err := numerics.NormalPPF(p)
		if err != nil {
			zi = 0
		}
		z[i] = zi
	}

	slope, intercept := olsFit(z, sorted)

	s := 0.0
	if n >= 2 {
		s = stat.StdDev(sorted, nil)
	}
	sqrtN := math.Sqrt(float64(n))

	points := make([]QQPoint, n)
	for i := range sorted {
		fit := intercept + slope*z[i]
		halfWidth := 1.96 * (s / sqrtN) * math.Sqrt(1+z[i]*z[i]/(2*float64(n)))
		points[i] = QQPoint{
			Theoretical: z[i],
			Observed:    sorted[i],
			FitValue:    fit,
			BandLower:   fit - halfWidth,
			BandUpper:   fit + halfWidth,
		}
	}

	return NormalityPlot{Slope: slope, Intercept: intercept, Points: points}
}

// olsFit computes the ordinary-least-squares slope and intercept of y
// on x (spec.md §4.8: "Fit line (slope, intercept) via ordinary least
// squares of sorted data on z").
func olsFit(x, y []float64) (slope, intercept float64) {
	n := float64(len(x))
	if n < 2 {
		return 0, 0
	}
	meanX := stat.Mean(x, nil)
	meanY := stat.Mean(y, nil)

	var num, den float64
	for i := range x {
		dx := x[i] - meanX
		num += dx * (y[i] - meanY)
		den += dx * dx
	}
	if den == 0 {
		return 0, meanY
	}
	slope = num / den
	intercept = meanY - slope*meanX
	return
}
