// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package report

import (
	"sort"

	"github.com/andescore/qcstat/internal/capability"
	"github.com/andescore/qcstat/internal/config"
	"github.com/andescore/qcstat/internal/distfit"
	"github.com/andescore/qcstat/internal/normality"
	"github.com/andescore/qcstat/internal/stability"
	"github.com/andescore/qcstat/internal/validators"
	"github.com/andescore/qcstat/pkg/types"
	"gonum.org/v1/gonum/stat"
)

// AnalyzeCapacidadProceso is the analyze_capacidad_proceso entry point
// (spec.md §6), run against module-level configuration defaults.
// specLimits is optional and enables the Capability sub-object; basic
// statistics, normality, and I-MR stability always run over the
// validated series.
func AnalyzeCapacidadProceso(table types.Table, specLimits *types.SpecLimits) (*types.Document, *types.QCError) {
	return AnalyzeCapacidadProcesoWithConfig(table, specLimits, config.DefaultAnalysisConfig())
}

// AnalyzeCapacidadProcesoWithConfig is AnalyzeCapacidadProceso using
// cfg's Cp/Cpk classification thresholds, I-MR control-chart
// constants, and offender-list cap in place of the module defaults
// (spec.md §9).
func AnalyzeCapacidadProcesoWithConfig(table types.Table, specLimits *types.SpecLimits, cfg *config.AnalysisConfig) (*types.Document, *types.QCError) {
	series, err := validators.ValidateCapacidadProcesoWithConfig(table, cfg)
	if err != nil {
		return nil, err
	}

	sorted := append([]float64(nil), series.Values...)
	sort.Float64s(sorted)

	basic := buildBasicStatistics(series.Values, sorted)
	normalityResult := normality.AnalyzeNormality(series.Values)
	stabilityResult := stability.AnalyzeWithConstants(series.Values, cfg.ControlChart)

	result := types.CapacidadProcesoResult{
		BasicStatistics: basic,
		Normality:       normalityResult,
		Stability:       stabilityResult,
		Warnings:        series.Warnings,
	}

	var chartData []types.ChartData

	if specLimits != nil {
		if specErr := capability.ValidateSpecLimits(specLimits.LEI, specLimits.LES); specErr != nil {
			return nil, types.NewCalculationError(specErr.Error(), specErr)
		}

		var fitted *distfit.Fit
		if normalityResult.Method == types.NormalityNone {
			f := normality.FitBestDistribution(series.Values)
			fitted = &f
		}

		capResult := capability.Analyze(series.Values, stabilityResult.Sigma, specLimits.LEI, specLimits.LES, fitted, cfg.Thresholds)
		result.Capability = &capResult

		chartData = append(chartData, types.ChartData{Type: "histogram", Data: buildHistogram(series.Values)})
	}

	chartData = append(chartData,
		types.ChartData{Type: "i_chart", Data: stabilityResult.IChart},
		types.ChartData{Type: "mr_chart", Data: stabilityResult.MRChart},
	)

	if len(series.Values) >= 2 {
		chartData = append(chartData, types.ChartData{Type: "normality_plot", Data: buildNormalityPlot(sorted)})
	}

	narrative := BuildCapabilityNarrative(result)

	return &types.Document{
		Results:      result,
		ChartData:    chartData,
		Instructions: narrative,
	}, nil
}

func buildBasicStatistics(values, sorted []float64) types.BasicStatistics {
	n := len(values)
	stats := types.BasicStatistics{N: n}
	if n == 0 {
		return stats
	}
	stats.Mean = stat.Mean(values, nil)
	if n >= 2 {
		stats.StdDev = stat.StdDev(values, nil)
	}
	stats.Min = sorted[0]
	stats.Max = sorted[n-1]
	stats.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	stats.Range = stats.Max - stats.Min
	return stats
}
