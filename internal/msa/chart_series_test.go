// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package msa

import (
	"testing"

	"github.com/andescore/qcstat/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChartSeries(t *testing.T) {
	table, mapping := referenceTable(
		[]float64{10.1, 12.5, 8.8, 15.2, 11.0},
		map[string]float64{"A": 0, "B": 0},
		[]float64{-0.3, 0, 0.3},
	)

	measurements, rErr := Reshape(table, mapping)
	require.Nil(t, rErr)

	anova, aErr := ComputeANOVA(measurements)
	require.Nil(t, aErr)

	variance := ComputeVarianceComponents(anova)
	grr := ComputeGRR(variance, testConfig.Thresholds, testConfig.NDCCap)

	series := BuildChartSeries(measurements, variance, grr, anova)

	require.Len(t, series.VariationBreakdown, 4)
	assert.Equal(t, "GRR Total", series.VariationBreakdown[3].Label)
	assert.NotEmpty(t, series.VariationBreakdown[3].Color)

	require.Len(t, series.OperatorMeans, 2)
	require.Len(t, series.PartBoxData, 5)
	require.Len(t, series.OperatorBoxData, 2)

	r, c := series.InteractionGrid.Means.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 2, c)

	assert.NotZero(t, series.RChart.UCL)
	assert.NotZero(t, series.XBarChart.Center)
}

func TestClassificationColor(t *testing.T) {
	assert.Equal(t, "green", classificationColor(types.ClassAceptable))
	assert.Equal(t, "yellow", classificationColor(types.ClassMarginal))
	assert.Equal(t, "red", classificationColor(types.ClassInaceptable))
	assert.Equal(t, "gray", classificationColor(types.Classification("")))
}
