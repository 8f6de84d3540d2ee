// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package normality

import (
	"math"
	"testing"

	"github.com/andescore/qcstat/pkg/types"
	"github.com/stretchr/testify/assert"
)

func clusteredNormalData() []float64 {
	// n=20, values clustered around 100 +/- 1 (spec.md §8, scenario 4).
	return []float64{
		99.1, 99.4, 99.6, 99.7, 99.8, 99.9, 100.0, 100.0, 100.1, 100.1,
		100.2, 100.2, 100.3, 100.4, 100.4, 100.5, 100.6, 100.7, 100.9, 101.0,
	}
}

func rightSkewedData() []float64 {
	// spec.md §8, scenario 5.
	return []float64{1.2, 1.5, 1.8, 2.3, 2.9, 3.5, 4.2, 5.1, 6.3, 8.0, 10.5, 14.0, 19.0, 25.0, 35.0}
}

func TestAndersonDarlingClearNormal(t *testing.T) {
	result := AndersonDarlingNormal(clusteredNormalData())
	assert.True(t, result.IsNormal)
	assert.GreaterOrEqual(t, result.PValue, 0.05)
}

func TestAndersonDarlingConstantData(t *testing.T) {
	result := AndersonDarlingNormal([]float64{5, 5, 5, 5})
	assert.True(t, math.IsInf(result.Statistic, 1))
	assert.Equal(t, 0.0, result.PValue)
	assert.False(t, result.IsNormal)
}

func TestAnalyzeNormalityOriginalSucceeds(t *testing.T) {
	result := AnalyzeNormality(clusteredNormalData())
	assert.True(t, result.IsNormal)
	assert.Equal(t, types.NormalityOriginal, result.Method)
}

func TestAnalyzeNormalityRightSkewed(t *testing.T) {
	original := AndersonDarlingNormal(rightSkewedData())
	assert.False(t, original.IsNormal)

	result := AnalyzeNormality(rightSkewedData())
	// Either a transform succeeds, or we fall through to 'none'.
	assert.Contains(t, []types.NormalityMethod{
		types.NormalityBoxCox, types.NormalityJohnsonSU, types.NormalityNone,
	}, result.Method)
	if result.Method == types.NormalityNone {
		assert.False(t, result.IsNormal)
	} else {
		assert.True(t, result.IsNormal)
	}
}

func TestFitBoxCoxHandlesNonPositiveMinimum(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2, 3, 4}
	result := FitBoxCox(x)
	assert.Greater(t, result.Shift, 0.0)
	assert.NotEmpty(t, result.Values)
}

func TestPlottingPositionsMonotoneInUnitInterval(t *testing.T) {
	p := PlottingPositions(10)
	assert.Len(t, p, 10)
	for i := 1; i < len(p); i++ {
		assert.Greater(t, p[i], p[i-1])
		assert.Greater(t, p[i], 0.0)
		assert.Less(t, p[i], 1.0)
	}
}
