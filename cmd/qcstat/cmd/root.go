// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package cmd implements the qcstat demo CLI: a thin, file-based
// harness over the analyze_msa and analyze_capacidad_proceso engines.
// It owns the one concern the engine itself deliberately stays out of
// (spec.md §1's non-goals): decoding a CSV file from disk.
package cmd

import (
	"fmt"
	"os"

	"github.com/andescore/qcstat/internal/config"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "qcstat",
	Short: "Statistical QC engine demo CLI",
	Long: `qcstat is a small command-line harness over a statistical
quality-control engine: Measurement System Analysis (Gauge R&R) and
Process Capability analysis over CSV tables.

It is a demonstration of the library, not a production reporting tool:
it reads one CSV file, runs the requested analysis, and prints the
resulting document as JSON.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to an analysis config JSON document (column aliases, classification thresholds, I-MR constants); module defaults apply when omitted")
	rootCmd.AddCommand(newMSACommand())
	rootCmd.AddCommand(newCapacidadCommand())
	rootCmd.AddCommand(newVersionCommand())
}

// loadAnalysisConfig resolves the active AnalysisConfig: the document
// at --config when given, module defaults otherwise (spec.md §9).
func loadAnalysisConfig() (*config.AnalysisConfig, error) {
	if configFile == "" {
		return config.DefaultAnalysisConfig(), nil
	}
	cfg, err := config.LoadAnalysisConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load --config: %w", err)
	}
	return cfg, nil
}
