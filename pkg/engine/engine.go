// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package engine is the public entry point of the QC statistical
// analysis engine (spec.md §6): given an in-memory types.Table, it
// returns a types.Document combining numeric results, chart-ready data
// series, and a Spanish markdown narrative. It accepts no file handle,
// socket, or database connection — those remain external collaborators.
package engine

import (
	"github.com/andescore/qcstat/internal/config"
	"github.com/andescore/qcstat/internal/report"
	"github.com/andescore/qcstat/pkg/types"
)

// AnalyzeMSA runs a Measurement System Analysis (Gauge R&R) over table,
// against module-level configuration defaults. When mapping is nil,
// the part/operator/measurement columns are auto-detected from their
// header names; specification is optional and enables the bias side
// panel (grand mean against a nominal reference value, one-sample
// t-test). No stability side panel is computed from it.
func AnalyzeMSA(table types.Table, mapping *types.ColumnMapping, specification *types.Specification) (*types.Document, *types.QCError) {
	return report.AnalyzeMSA(table, mapping, specification)
}

// AnalyzeMSAWithConfig is AnalyzeMSA using an AnalysisConfig loaded via
// config.LoadAnalysisConfig in place of the module defaults (spec.md
// §9): column aliases, %GRR classification thresholds, and the ndc cap.
func AnalyzeMSAWithConfig(table types.Table, mapping *types.ColumnMapping, specification *types.Specification, cfg *config.AnalysisConfig) (*types.Document, *types.QCError) {
	return report.AnalyzeMSAWithConfig(table, mapping, specification, cfg)
}

// AnalyzeCapacidadProceso runs a Process Capability study (descriptive
// statistics, normality check, I-MR stability, and — when limits is
// non-nil — Cp/Cpk/Pp/Ppk) over a single numeric column of table,
// against module-level configuration defaults.
func AnalyzeCapacidadProceso(table types.Table, limits *types.SpecLimits) (*types.Document, *types.QCError) {
	return report.AnalyzeCapacidadProceso(table, limits)
}

// AnalyzeCapacidadProcesoWithConfig is AnalyzeCapacidadProceso using an
// AnalysisConfig loaded via config.LoadAnalysisConfig in place of the
// module defaults (spec.md §9): Cp/Cpk classification thresholds and
// I-MR control-chart constants.
func AnalyzeCapacidadProcesoWithConfig(table types.Table, limits *types.SpecLimits, cfg *config.AnalysisConfig) (*types.Document, *types.QCError) {
	return report.AnalyzeCapacidadProcesoWithConfig(table, limits, cfg)
}
