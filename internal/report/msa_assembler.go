// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package report merges the numeric results of the MSA and Process
// Capability pipelines into the final Document shape: chart-ready data
// series plus a Spanish markdown narrative (spec.md §4.8, §6).
package report

import (
	"github.com/andescore/qcstat/internal/config"
	"github.com/andescore/qcstat/internal/msa"
	"github.com/andescore/qcstat/internal/validators"
	"github.com/andescore/qcstat/pkg/types"
)

// AnalyzeMSA is the analyze_msa entry point (spec.md §6), run against
// module-level configuration defaults. When mapping is nil the MSA
// validator runs against table; otherwise the caller's pre-validated
// mapping is used as-is. specification is optional and enables the
// bias side panel; no stability side panel is computed from it.
func AnalyzeMSA(table types.Table, mapping *types.ColumnMapping, specification *types.Specification) (*types.Document, *types.QCError) {
	return AnalyzeMSAWithConfig(table, mapping, specification, config.DefaultAnalysisConfig())
}

// AnalyzeMSAWithConfig is AnalyzeMSA using cfg's column aliases, %GRR
// classification thresholds, ndc cap, and offender-list cap in place
// of the module defaults (spec.md §9).
func AnalyzeMSAWithConfig(table types.Table, mapping *types.ColumnMapping, specification *types.Specification, cfg *config.AnalysisConfig) (*types.Document, *types.QCError) {
	resolved := mapping
	if resolved == nil {
		detected, err := validators.ValidateMSAWithConfig(table, cfg)
		if err != nil {
			return nil, err
		}
		resolved = detected
	}

	result, err := msa.Analyze(table, *resolved, specification, cfg)
	if err != nil {
		return nil, err
	}

	measurements, err := msa.Reshape(table, *resolved)
	if err != nil {
		return nil, err
	}
	anovaTable, err := msa.ComputeANOVA(measurements)
	if err != nil {
		return nil, err
	}
	grr := msa.ComputeGRR(result.Variance, cfg.Thresholds, cfg.NDCCap)
	series := msa.BuildChartSeries(measurements, result.Variance, grr, anovaTable)
	narrative := msa.BuildNarrative(*result)

	return &types.Document{
		Results:           result,
		ChartData:         msaChartData(series),
		Instructions:      narrative,
		DominantVariation: result.DominantSource,
		Classification:    result.Classification,
	}, nil
}

// msaChartData renders the MSA chart series into the Document's
// deterministic chart-list order (spec.md §4.3 (a)-(g)).
func msaChartData(series msa.ChartSeries) []types.ChartData {
	return []types.ChartData{
		{Type: "variation_breakdown", Data: series.VariationBreakdown},
		{Type: "operator_stats", Data: map[string]any{
			"means":    series.OperatorMeans,
			"std_devs": series.OperatorStdDevs,
		}},
		{Type: "r_chart", Data: series.RChart},
		{Type: "xbar_chart", Data: series.XBarChart},
		{Type: "part_box_plot", Data: series.PartBoxData},
		{Type: "operator_box_plot", Data: series.OperatorBoxData},
		{Type: "interaction_grid", Data: series.InteractionGrid},
	}
}
