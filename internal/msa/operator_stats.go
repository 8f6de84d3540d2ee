// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package msa

import (
	"math"
	"sort"

	"github.com/andescore/qcstat/pkg/types"
	"gonum.org/v1/gonum/stat"
)

// ComputeOperatorStats derives per-operator mean, sample std (ddof=1),
// average per-part range, and a CV-based consistency ranking
// (spec.md §4.3). Ranks are 1-based ascending by consistency (lower
// score = more consistent = rank 1).
func ComputeOperatorStats(measurements []Measurement) []types.OperatorStats {
	operators := UniqueSorted(measurements, func(m Measurement) string { return m.Operator })

	valuesByOp := map[string][]float64{}
	rangesByOp := map[string][]float64{}

	partsByOp := map[string]map[string][]float64{}
	for _, m := range measurements {
		valuesByOp[m.Operator] = append(valuesByOp[m.Operator], m.Value)
		if partsByOp[m.Operator] == nil {
			partsByOp[m.Operator] = map[string][]float64{}
		}
		partsByOp[m.Operator][m.Part] = append(partsByOp[m.Operator][m.Part], m.Value)
	}
	for op, byPart := range partsByOp {
		for _, vals := range byPart {
			rangesByOp[op] = append(rangesByOp[op], rangeOf(vals))
		}
	}

	results := make([]types.OperatorStats, 0, len(operators))
	for _, op := range operators {
		vals := valuesByOp[op]
		mean := stat.Mean(vals, nil)
		std := 0.0
		if len(vals) > 1 {
			std = stat.StdDev(vals, nil)
		}
		avgRange := stat.Mean(rangesByOp[op], nil)

		var consistency float64
		if math.Abs(mean) > 1e-9 {
			consistency = std / math.Abs(mean) * 100
		} else {
			consistency = std * 100
		}

		results = append(results, types.OperatorStats{
			Operator:    op,
			Mean:        mean,
			StdDev:      std,
			AvgRange:    avgRange,
			Consistency: consistency,
		})
	}

	rankByConsistency(results)
	return results
}

func rangeOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo
}

func rankByConsistency(stats []types.OperatorStats) {
	order := make([]int, len(stats))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return stats[order[a]].Consistency < stats[order[b]].Consistency
	})
	for rank, idx := range order {
		stats[idx].ConsistencyRank = rank + 1
	}
}
