// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package msa

import (
	"sort"

	"github.com/andescore/qcstat/pkg/types"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// d4Table and a2Table are the AIAG subgroup-size constants used
// by the R-chart and X-bar chart (spec.md §4.3). Subgroup sizes
// outside the table default to the r=3 entry.
var (
	d4Table = map[int]float64{2: 3.267, 3: 2.574, 4: 2.282, 5: 2.114, 6: 2.004}
	a2Table = map[int]float64{2: 1.880, 3: 1.023, 4: 0.729, 5: 0.577, 6: 0.483}
)

func d4For(r int) float64 {
	if v, ok := d4Table[r]; ok {
		return v
	}
	return d4Table[3]
}

// d3For is 0 for subgroup sizes up to 6, the only range this system
// supports (spec.md §4.3).
func d3For(int) float64 { return 0 }

func a2For(r int) float64 {
	if v, ok := a2Table[r]; ok {
		return v
	}
	return a2Table[3]
}

// RChart holds the subgroup-range control chart derived from
// per-part ranges within each operator (spec.md §4.3).
type RChart struct {
	Values []float64
	Center float64
	UCL    float64
	LCL    float64
}

// XBarChart holds the subgroup-mean control chart (spec.md §4.3).
type XBarChart struct {
	Values []float64
	Center float64
	UCL    float64
	LCL    float64
}

// ChartSeries is the full structural (non-rendered) chart payload for
// an MSA report: variation breakdown, per-operator stats, R/X-bar
// charts, box data, and the interaction grid (spec.md §4.3).
type ChartSeries struct {
	VariationBreakdown []VariationBar
	OperatorMeans      []LabeledValue
	OperatorStdDevs    []LabeledValue
	RChart             RChart
	XBarChart          XBarChart
	PartBoxData        []BoxData
	OperatorBoxData    []BoxData
	InteractionGrid    InteractionGrid
}

// VariationBar is one labeled bar in the variation-breakdown chart.
type VariationBar struct {
	Label string
	Value float64
	Color string // classification-derived color, only set for the GRR Total bar
}

// LabeledValue pairs a category label with a numeric value.
type LabeledValue struct {
	Label string
	Value float64
}

// BoxData is a five-number summary plus the raw values, used for
// per-part/per-operator box plots.
type BoxData struct {
	Label  string
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Values []float64
}

// InteractionGrid is the part x operator cell-mean matrix used to
// render the interaction plot.
type InteractionGrid struct {
	Parts     []string
	Operators []string
	Means     *mat.Dense // Parts rows x Operators cols
}

func classificationColor(c types.Classification) string {
	switch c {
	case types.ClassAceptable:
		return "green"
	case types.ClassMarginal:
		return "yellow"
	case types.ClassInaceptable:
		return "red"
	default:
		return "gray"
	}
}

// BuildChartSeries assembles every structural chart fragment for the
// MSA report (spec.md §4.3, §4.8).
func BuildChartSeries(measurements []Measurement, variance types.VarianceComponents, grr GRRMetrics, table *ANOVATable) ChartSeries {
	breakdown := []VariationBar{
		{Label: "Repetibilidad", Value: grr.PercentRepeatability},
		{Label: "Reproducibilidad", Value: grr.PercentReproducibility},
		{Label: "Parte a Parte", Value: grr.PercentPartToPart},
		{Label: "GRR Total", Value: grr.PercentGRR, Color: classificationColor(grr.Classification)},
	}

	opStats := ComputeOperatorStats(measurements)
	var opMeans, opStdDevs []LabeledValue
	for _, s := range opStats {
		opMeans = append(opMeans, LabeledValue{Label: s.Operator, Value: s.Mean})
		opStdDevs = append(opStdDevs, LabeledValue{Label: s.Operator, Value: s.StdDev})
	}

	rChart := buildRChart(measurements, table.Replicates)
	xBarChart := buildXBarChart(measurements, table.Replicates, rChart.Center)

	parts := UniqueSorted(measurements, func(m Measurement) string { return m.Part })
	operators := UniqueSorted(measurements, func(m Measurement) string { return m.Operator })

	partBox := buildBoxData(measurements, parts, func(m Measurement) string { return m.Part })
	opBox := buildBoxData(measurements, operators, func(m Measurement) string { return m.Operator })

	grid := buildInteractionGrid(measurements, parts, operators)

	return ChartSeries{
		VariationBreakdown: breakdown,
		OperatorMeans:      opMeans,
		OperatorStdDevs:    opStdDevs,
		RChart:             rChart,
		XBarChart:          xBarChart,
		PartBoxData:        partBox,
		OperatorBoxData:    opBox,
		InteractionGrid:    grid,
	}
}

// buildRChart groups measurements by (part, operator) subgroup and
// computes the range of each, then applies AIAG D3/D4 limits.
func buildRChart(measurements []Measurement, replicates int) RChart {
	grouped := map[cellKey][]float64{}
	var order []cellKey
	for _, m := range measurements {
		k := cellKey{m.Part, m.Operator}
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], m.Value)
	}

	ranges := make([]float64, 0, len(order))
	for _, k := range order {
		ranges = append(ranges, rangeOf(grouped[k]))
	}

	rBar := stat.Mean(ranges, nil)
	return RChart{
		Values: ranges,
		Center: rBar,
		UCL:    d4For(replicates) * rBar,
		LCL:    d3For(replicates) * rBar,
	}
}

// buildXBarChart groups measurements by (part, operator) subgroup and
// computes subgroup means, applying X-double-bar +/- A2*R-bar limits.
func buildXBarChart(measurements []Measurement, replicates int, rBar float64) XBarChart {
	grouped := map[cellKey][]float64{}
	var order []cellKey
	for _, m := range measurements {
		k := cellKey{m.Part, m.Operator}
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], m.Value)
	}

	means := make([]float64, 0, len(order))
	for _, k := range order {
		means = append(means, stat.Mean(grouped[k], nil))
	}

	grandMean := stat.Mean(means, nil)
	a2 := a2For(replicates)
	limit := a2 * rBar

	return XBarChart{
		Values: means,
		Center: grandMean,
		UCL:    grandMean + limit,
		LCL:    grandMean - limit,
	}
}

func buildBoxData(measurements []Measurement, labels []string, pick func(Measurement) string) []BoxData {
	byLabel := map[string][]float64{}
	for _, m := range measurements {
		l := pick(m)
		byLabel[l] = append(byLabel[l], m.Value)
	}

	out := make([]BoxData, 0, len(labels))
	for _, l := range labels {
		vals := append([]float64(nil), byLabel[l]...)
		out = append(out, fiveNumberSummary(l, vals))
	}
	return out
}

func fiveNumberSummary(label string, values []float64) BoxData {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return BoxData{Label: label}
	}
	return BoxData{
		Label:  label,
		Min:    sorted[0],
		Q1:     percentile(sorted, 0.25),
		Median: percentile(sorted, 0.5),
		Q3:     percentile(sorted, 0.75),
		Max:    sorted[n-1],
		Values: values,
	}
}

// percentile returns stat.Quantile's Empirical (step, non-interpolated)
// quantile of an already-sorted slice.
func percentile(sorted []float64, p float64) float64 {
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

func buildInteractionGrid(measurements []Measurement, parts, operators []string) InteractionGrid {
	sums := map[cellKey]float64{}
	counts := map[cellKey]int{}
	for _, m := range measurements {
		k := cellKey{m.Part, m.Operator}
		sums[k] += m.Value
		counts[k]++
	}

	means := mat.NewDense(len(parts), len(operators), nil)
	for i, p := range parts {
		for j, o := range operators {
			k := cellKey{p, o}
			if counts[k] > 0 {
				means.Set(i, j, sums[k]/float64(counts[k]))
			}
		}
	}

	return InteractionGrid{Parts: parts, Operators: operators, Means: means}
}
