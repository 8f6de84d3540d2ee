// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/andescore/qcstat/pkg/engine"
	"github.com/andescore/qcstat/pkg/types"
	"github.com/spf13/cobra"
)

type msaOptions struct {
	part         string
	operator     string
	measurements []string
	nominal      float64
	excludeRows  string
}

func newMSACommand() *cobra.Command {
	opts := &msaOptions{}

	cmd := &cobra.Command{
		Use:   "msa [flags] <input.csv>",
		Short: "Run a Measurement System Analysis (Gauge R&R) on a CSV table",
		Long: `msa performs a two-way crossed ANOVA Gauge R&R study on a
"wide" CSV table with one row per (part, operator) pair and one column
per repeated measurement.

When --part/--operator/--measurements are omitted, the columns are
auto-detected from their header names (e.g. "Parte", "Operador",
"Medicion1", "Medicion2", ...).

EXAMPLES:
  qcstat msa data/grr.csv
  qcstat msa --part Pieza --operator Evaluador --measurements M1,M2,M3 data/grr.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMSA(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.part, "part", "", "Part/piece column name (auto-detected if omitted)")
	cmd.Flags().StringVar(&opts.operator, "operator", "", "Operator column name (auto-detected if omitted)")
	cmd.Flags().StringSliceVar(&opts.measurements, "measurements", nil, "Comma-separated measurement column names (auto-detected if omitted)")
	cmd.Flags().Float64Var(&opts.nominal, "nominal", 0, "Optional nominal/reference value, enables the bias side-panel")
	cmd.Flags().StringVar(&opts.excludeRows, "exclude-rows", "", "Comma-separated data row indices/ranges to drop (1-based)")

	return cmd
}

func runMSA(opts *msaOptions, inputFile string) error {
	table, err := loadTable(inputFile, opts.excludeRows)
	if err != nil {
		return err
	}

	var mapping *types.ColumnMapping
	if opts.part != "" || opts.operator != "" || len(opts.measurements) > 0 {
		mapping = &types.ColumnMapping{
			Part:         opts.part,
			Operator:     opts.operator,
			Measurements: opts.measurements,
		}
	}

	var spec *types.Specification
	if opts.nominal != 0 {
		spec = &types.Specification{Nominal: opts.nominal}
	}

	cfg, err := loadAnalysisConfig()
	if err != nil {
		return err
	}

	doc, qcErr := engine.AnalyzeMSAWithConfig(table, mapping, spec, cfg)
	if qcErr != nil {
		return fmt.Errorf("%s", qcErr.Error())
	}

	return printDocument(doc)
}

func printDocument(doc *types.Document) error {
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
