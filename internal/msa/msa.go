// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package msa

import (
	"math"

	"github.com/andescore/qcstat/internal/config"
	"github.com/andescore/qcstat/internal/numerics"
	"github.com/andescore/qcstat/pkg/types"
	"gonum.org/v1/gonum/stat"
)

// Analyze runs the full MSA pipeline over an already-validated column
// mapping: reshape -> ANOVA -> variance components -> GRR -> operator
// stats -> dominant source -> optional bias panel (spec.md §4.3). cfg
// supplies the %GRR classification thresholds and the ndc cap. Chart
// series and narrative are built separately by the report assembler,
// which needs the whole-document ordering from §4.8.
func Analyze(table types.Table, mapping types.ColumnMapping, spec *types.Specification, cfg *config.AnalysisConfig) (*types.MSAResult, *types.QCError) {
	measurements, err := Reshape(table, mapping)
	if err != nil {
		return nil, err
	}

	anova, err := ComputeANOVA(measurements)
	if err != nil {
		return nil, err
	}

	variance := ComputeVarianceComponents(anova)
	grr := ComputeGRR(variance, cfg.Thresholds, cfg.NDCCap)
	opStats := ComputeOperatorStats(measurements)

	result := &types.MSAResult{
		Variance:               variance,
		PercentRepeatability:   grr.PercentRepeatability,
		PercentReproducibility: grr.PercentReproducibility,
		PercentPartToPart:      grr.PercentPartToPart,
		PercentGRR:             grr.PercentGRR,
		NDC:                    grr.NDC,
		Classification:         grr.Classification,
		DominantSource:         grr.DominantSource,
		ANOVA:                  anova.Rows,
		OperatorStats:          opStats,
		NParts:                 anova.NParts,
		NOperators:             anova.NOperators,
		NReplicates:            anova.Replicates,
	}

	if spec != nil {
		result.Bias = computeBias(measurements, spec.Nominal)
	}

	return result, nil
}

// computeBias runs a one-sample t-test of the grand mean against the
// specification nominal value (spec.md §6: "bias/stability side-panels
// in the narrative").
func computeBias(measurements []Measurement, nominal float64) *types.BiasResult {
	values := make([]float64, len(measurements))
	for i, m := range measurements {
		values[i] = m.Value
	}

	n := len(values)
	if n < 2 {
		return nil
	}

	mean := stat.Mean(values, nil)
	std := stat.StdDev(values, nil)
	bias := mean - nominal

	df := n - 1
	result := &types.BiasResult{Bias: bias, DF: df}

	if std <= 0 {
		return result
	}

	se := std / math.Sqrt(float64(n))
	t := bias / se
	result.TStatistic = t

	p, err := tTestPValue(t, df)
	if err == nil {
		result.PValue = p
		result.Significant = p < 0.05
	}
	return result
}

// tTestPValue computes the two-sided p-value for a t-statistic via
// the regularized incomplete beta relation P(|T| > |t|) =
// I_{df/(df+t^2)}(df/2, 1/2) (spec.md §4.1's beta helper, applied to
// the Student-t survival function).
func tTestPValue(t float64, df int) (float64, error) {
	if df <= 0 {
		return 0, &numerics.DomainError{Func: "tTestPValue", Arg: "df", Value: float64(df)}
	}
	x := float64(df) / (float64(df) + t*t)
	return numerics.RegularizedIncompleteBeta(float64(df)/2, 0.5, x)
}
