// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package config loads the optional analysis configuration document
// (spec.md §9's "inject them as configuration structs if the host
// language prefers"): column-name aliases, classification thresholds,
// and control-chart constant overrides. Analysis runs against
// module-level defaults when no config file is supplied.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/andescore/qcstat/pkg/validation"
)

// ColumnAliases lets a caller's CSV use different header names than the
// ones the MSA validator looks for by default (spec.md §4.2).
type ColumnAliases struct {
	Part         []string `json:"part"`
	Operator     []string `json:"operator"`
	Measurement  []string `json:"measurement"`
}

// ClassificationThresholds overrides the %GRR / Cp / Cpk cut points
// used to classify a measurement system or a process (spec.md §4.4,
// §4.7). Zero fields fall back to the spec defaults.
type ClassificationThresholds struct {
	GRRAcceptable   float64 `json:"grr_acceptable"`
	GRRMarginal     float64 `json:"grr_marginal"`
	CpExcellent     float64 `json:"cp_excellent"`
	CpAdequate      float64 `json:"cp_adequate"`
	CpMarginal      float64 `json:"cp_marginal"`
	CpInadequate    float64 `json:"cp_inadequate"`
}

// ControlChartConstants overrides the AIAG I-MR constants (spec.md
// §4.6). Zero fields fall back to the d2=1.128/D3=0/D4=3.267/E2=2.66
// two-observation table.
type ControlChartConstants struct {
	E2 float64 `json:"e2"`
	D3 float64 `json:"d3"`
	D4 float64 `json:"d4"`
	D2 float64 `json:"d2"`
}

// AnalysisConfig is the optional, validated configuration document.
type AnalysisConfig struct {
	ColumnAliases   ColumnAliases            `json:"column_aliases"`
	Thresholds      ClassificationThresholds `json:"thresholds"`
	ControlChart    ControlChartConstants    `json:"control_chart"`
	MaxOffenders    int                      `json:"max_offenders"`
	NDCCap          int                      `json:"ndc_cap"`
}

// DefaultAnalysisConfig returns the configuration the engine uses when
// no override document is supplied, matching spec.md §4's defaults.
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		ColumnAliases: ColumnAliases{
			Part:        []string{"parte", "pieza", "part"},
			Operator:    []string{"operador", "operator", "evaluador", "op"},
			Measurement: []string{"medicion", "medición", "measurement", "lectura"},
		},
		Thresholds: ClassificationThresholds{
			GRRAcceptable: 10.0,
			GRRMarginal:   30.0,
			CpExcellent:   1.67,
			CpAdequate:    1.33,
			CpMarginal:    1.00,
			CpInadequate:  0.67,
		},
		ControlChart: ControlChartConstants{
			E2: 2.66,
			D3: 0.0,
			D4: 3.267,
			D2: 1.128,
		},
		MaxOffenders: 20,
		NDCCap:       999,
	}
}

// LoadAnalysisConfig reads and validates an AnalysisConfig document
// from filename, filling any zero-valued field with the corresponding
// module default.
func LoadAnalysisConfig(filename string) (*AnalysisConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	validator, err := validation.NewConfigValidator("v1")
	if err != nil {
		return nil, fmt.Errorf("failed to load config schema: %w", err)
	}
	if err := validator.ValidateConfig(data); err != nil {
		return nil, fmt.Errorf("invalid analysis config: %w", err)
	}

	cfg := DefaultAnalysisConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills zero-valued override fields with spec defaults
// so a config document only needs to mention what it overrides.
func applyDefaults(cfg *AnalysisConfig) {
	def := DefaultAnalysisConfig()

	if len(cfg.ColumnAliases.Part) == 0 {
		cfg.ColumnAliases.Part = def.ColumnAliases.Part
	}
	if len(cfg.ColumnAliases.Operator) == 0 {
		cfg.ColumnAliases.Operator = def.ColumnAliases.Operator
	}
	if len(cfg.ColumnAliases.Measurement) == 0 {
		cfg.ColumnAliases.Measurement = def.ColumnAliases.Measurement
	}
	if cfg.Thresholds.GRRAcceptable == 0 {
		cfg.Thresholds.GRRAcceptable = def.Thresholds.GRRAcceptable
	}
	if cfg.Thresholds.GRRMarginal == 0 {
		cfg.Thresholds.GRRMarginal = def.Thresholds.GRRMarginal
	}
	if cfg.Thresholds.CpExcellent == 0 {
		cfg.Thresholds.CpExcellent = def.Thresholds.CpExcellent
	}
	if cfg.Thresholds.CpAdequate == 0 {
		cfg.Thresholds.CpAdequate = def.Thresholds.CpAdequate
	}
	if cfg.Thresholds.CpMarginal == 0 {
		cfg.Thresholds.CpMarginal = def.Thresholds.CpMarginal
	}
	if cfg.Thresholds.CpInadequate == 0 {
		cfg.Thresholds.CpInadequate = def.Thresholds.CpInadequate
	}
	if cfg.ControlChart.E2 == 0 {
		cfg.ControlChart.E2 = def.ControlChart.E2
	}
	if cfg.ControlChart.D4 == 0 {
		cfg.ControlChart.D4 = def.ControlChart.D4
	}
	if cfg.ControlChart.D2 == 0 {
		cfg.ControlChart.D2 = def.ControlChart.D2
	}
	if cfg.MaxOffenders == 0 {
		cfg.MaxOffenders = def.MaxOffenders
	}
	if cfg.NDCCap == 0 {
		cfg.NDCCap = def.NDCCap
	}
}
