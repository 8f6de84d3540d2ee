// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cmd

import (
	"fmt"
	"math"

	"github.com/andescore/qcstat/pkg/engine"
	"github.com/andescore/qcstat/pkg/types"
	"github.com/spf13/cobra"
)

type capacidadOptions struct {
	lei         float64
	les         float64
	excludeRows string
}

func newCapacidadCommand() *cobra.Command {
	opts := &capacidadOptions{lei: math.NaN(), les: math.NaN()}

	cmd := &cobra.Command{
		Use:   "capacidad [flags] <input.csv>",
		Short: "Run a Process Capability analysis on a single-column CSV series",
		Long: `capacidad runs descriptive statistics, a normality check (with
Box-Cox and Johnson-SU fallbacks), an I-MR stability study, and,
when --lei/--les are both given, Cp/Cpk/Pp/Ppk capability indices on a
single numeric column.

When the CSV has more than one column, a column named "Valores" (any
case) is used if present; otherwise the first numeric column found.

EXAMPLES:
  qcstat capacidad data/proceso.csv
  qcstat capacidad --lei 9.8 --les 10.2 data/proceso.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapacidad(opts, args[0])
		},
	}

	cmd.Flags().Float64Var(&opts.lei, "lei", math.NaN(), "Lower specification limit")
	cmd.Flags().Float64Var(&opts.les, "les", math.NaN(), "Upper specification limit")
	cmd.Flags().StringVar(&opts.excludeRows, "exclude-rows", "", "Comma-separated data row indices/ranges to drop (1-based)")

	return cmd
}

func runCapacidad(opts *capacidadOptions, inputFile string) error {
	table, err := loadTable(inputFile, opts.excludeRows)
	if err != nil {
		return err
	}

	var specLimits *types.SpecLimits
	if !math.IsNaN(opts.lei) && !math.IsNaN(opts.les) {
		specLimits = &types.SpecLimits{LEI: opts.lei, LES: opts.les}
	}

	cfg, err := loadAnalysisConfig()
	if err != nil {
		return err
	}

	doc, qcErr := engine.AnalyzeCapacidadProcesoWithConfig(table, specLimits, cfg)
	if qcErr != nil {
		return fmt.Errorf("%s", qcErr.Error())
	}

	return printDocument(doc)
}
