// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package msa

import (
	"github.com/andescore/qcstat/internal/numerics"
	"github.com/andescore/qcstat/pkg/types"
	"gonum.org/v1/gonum/stat"
)

// cellKey indexes the part x operator grid.
type cellKey struct {
	part, operator string
}

// anovaInputs is the set of means/counts the two-way crossed ANOVA is
// built from (spec.md §4.3).
type anovaInputs struct {
	parts     []string
	operators []string
	nParts    int
	nOperators int
	replicates int
	n          int

	grandMean    float64
	partMeans    map[string]float64
	operatorMeans map[string]float64
	cellMeans    map[cellKey]float64
	values       []float64
}

func buildANOVAInputs(measurements []Measurement) anovaInputs {
	parts := UniqueSorted(measurements, func(m Measurement) string { return m.Part })
	operators := UniqueSorted(measurements, func(m Measurement) string { return m.Operator })

	values := make([]float64, len(measurements))
	for i, m := range measurements {
		values[i] = m.Value
	}
	grandMean := stat.Mean(values, nil)

	partSums := map[string]float64{}
	partCounts := map[string]int{}
	opSums := map[string]float64{}
	opCounts := map[string]int{}
	cellSums := map[cellKey]float64{}
	cellCounts := map[cellKey]int{}

	for _, m := range measurements {
		partSums[m.Part] += m.Value
		partCounts[m.Part]++
		opSums[m.Operator] += m.Value
		opCounts[m.Operator]++
		k := cellKey{m.Part, m.Operator}
		cellSums[k] += m.Value
		cellCounts[k]++
	}

	partMeans := make(map[string]float64, len(parts))
	for _, p := range parts {
		partMeans[p] = partSums[p] / float64(partCounts[p])
	}
	operatorMeans := make(map[string]float64, len(operators))
	for _, o := range operators {
		operatorMeans[o] = opSums[o] / float64(opCounts[o])
	}
	cellMeans := make(map[cellKey]float64, len(cellSums))
	replicates := 0
	for k, sum := range cellSums {
		cnt := cellCounts[k]
		cellMeans[k] = sum / float64(cnt)
		if cnt > replicates {
			replicates = cnt
		}
	}

	return anovaInputs{
		parts:         parts,
		operators:     operators,
		nParts:        len(parts),
		nOperators:    len(operators),
		replicates:    replicates,
		n:             len(measurements),
		grandMean:     grandMean,
		partMeans:     partMeans,
		operatorMeans: operatorMeans,
		cellMeans:     cellMeans,
		values:        values,
	}
}

// ANOVATable is the full sum-of-squares / F-test breakdown for the
// two-way crossed design (spec.md §4.3).
type ANOVATable struct {
	Rows       []types.ANOVARow
	SSPart     float64
	SSOperator float64
	SSInteraction float64
	SSEquipment   float64
	SSTotal       float64
	MSPart        float64
	MSOperator    float64
	MSInteraction float64
	MSEquipment   float64
	NParts        int
	NOperators    int
	Replicates    int
}

// ComputeANOVA runs the two-way crossed ANOVA over long-form
// measurements and returns the sum-of-squares/F-test breakdown
// (spec.md §4.3). It returns a CALCULATION_ERROR if fewer than 2
// parts, 2 operators, or 1 replicate are present (the validator is
// expected to have already enforced this; this is a defensive guard).
func ComputeANOVA(measurements []Measurement) (*ANOVATable, *types.QCError) {
	in := buildANOVAInputs(measurements)
	if in.nParts < 2 || in.nOperators < 2 || in.replicates < 1 {
		return nil, types.NewCalculationError("datos insuficientes para calcular el ANOVA de dos vías", nil)
	}

	r := float64(in.replicates)
	npf := float64(in.nParts)
	nof := float64(in.nOperators)

	var ssTotal, ssPart, ssOp, ssInt float64
	for _, v := range in.values {
		d := v - in.grandMean
		ssTotal += d * d
	}
	for _, p := range in.parts {
		d := in.partMeans[p] - in.grandMean
		ssPart += d * d
	}
	ssPart *= nof * r

	for _, o := range in.operators {
		d := in.operatorMeans[o] - in.grandMean
		ssOp += d * d
	}
	ssOp *= npf * r

	for _, p := range in.parts {
		for _, o := range in.operators {
			cm, ok := in.cellMeans[cellKey{p, o}]
			if !ok {
				continue
			}
			d := cm - in.partMeans[p] - in.operatorMeans[o] + in.grandMean
			ssInt += d * d
		}
	}
	ssInt *= r

	ssEq := ssTotal - (ssPart + ssOp + ssInt)
	if ssEq < 0 {
		ssEq = 0
	}

	dfPart := in.nParts - 1
	dfOp := in.nOperators - 1
	dfInt := dfPart * dfOp
	dfEq := in.n - in.nParts*in.nOperators
	dfTotal := in.n - 1

	msPart := safeDiv(ssPart, float64(dfPart))
	msOp := safeDiv(ssOp, float64(dfOp))
	msInt := safeDiv(ssInt, float64(dfInt))
	msEq := safeDiv(ssEq, float64(dfEq))

	rows := []types.ANOVARow{
		anovaRow("Parte", ssPart, dfPart, msPart, msEq, dfEq),
		anovaRow("Operador", ssOp, dfOp, msOp, msEq, dfEq),
		anovaRow("Parte x Operador", ssInt, dfInt, msInt, msEq, dfEq),
		anovaRow("Equipo (repetibilidad)", ssEq, dfEq, msEq, 0, 0),
		anovaRow("Total", ssTotal, dfTotal, 0, 0, 0),
	}

	return &ANOVATable{
		Rows:          rows,
		SSPart:        ssPart,
		SSOperator:    ssOp,
		SSInteraction: ssInt,
		SSEquipment:   ssEq,
		SSTotal:       ssTotal,
		MSPart:        msPart,
		MSOperator:    msOp,
		MSInteraction: msInt,
		MSEquipment:   msEq,
		NParts:        in.nParts,
		NOperators:    in.nOperators,
		Replicates:    in.replicates,
	}, nil
}

func anovaRow(source string, ss float64, df int, ms, msDenominator float64, dfDenominator int) types.ANOVARow {
	row := types.ANOVARow{
		Source: source,
		SS:     ss,
		DF:     df,
		MS:     ms,
	}
	if msDenominator > 0 && df > 0 && dfDenominator > 0 {
		f := ms / msDenominator
		row.F = f
		if p, err := numerics.FSurvival(f, df, dfDenominator); err == nil {
			row.P = p
		}
	}
	return row
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
