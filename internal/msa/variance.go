// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package msa

import (
	"math"

	"github.com/andescore/qcstat/pkg/types"
)

// ComputeVarianceComponents derives the AIAG ANOVA-method variance
// components from the ANOVA mean squares (spec.md §4.3). Negative
// method-of-moments estimates are truncated to zero.
func ComputeVarianceComponents(table *ANOVATable) types.VarianceComponents {
	r := float64(table.Replicates)
	npf := float64(table.NParts)
	nof := float64(table.NOperators)

	sigmaRep := table.MSEquipment
	if sigmaRep < 0 {
		sigmaRep = 0
	}

	sigmaInt := (table.MSInteraction - table.MSEquipment) / r
	sigmaInt = math.Max(0, sigmaInt)

	sigmaOp := (table.MSOperator - table.MSInteraction) / (npf * r)
	sigmaOp = math.Max(0, sigmaOp)

	sigmaPart := (table.MSPart - table.MSInteraction) / (nof * r)
	sigmaPart = math.Max(0, sigmaPart)

	reprod := sigmaOp + sigmaInt
	total := sigmaRep + reprod + sigmaPart

	return types.VarianceComponents{
		Repeatability:   sigmaRep,
		Operator:        sigmaOp,
		Interaction:     sigmaInt,
		Reproducibility: reprod,
		PartToPart:      sigmaPart,
		Total:           total,
	}
}
