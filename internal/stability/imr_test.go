// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package stability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stableSeries is 30 deterministic points drawn around mean 50 with a
// small bounded oscillation, used as a stand-in for "30 draws from
// N(50,4)" (spec.md §8 scenario 6) without relying on a random source.
func stableSeries() []float64 {
	x := make([]float64, 30)
	for i := range x {
		x[i] = 50 + 2*math.Sin(float64(i)*0.7) + 0.3*math.Cos(float64(i)*2.3)
	}
	return x
}

func TestAnalyzeStableSeries(t *testing.T) {
	result := Analyze(stableSeries())
	assert.True(t, result.IsStable)
	assert.Empty(t, result.IChart.OOCPoints)
	assert.Empty(t, result.MRChart.OOCPoints)
	assert.True(t, result.Rules.Rule1.Cumple)
}

func TestAnalyzeDetectsRule1Violation(t *testing.T) {
	x := append(stableSeries(), 65, 35)
	result := Analyze(x)
	assert.False(t, result.Rules.Rule1.Cumple)
	assert.False(t, result.IsStable)
	assert.NotEmpty(t, result.Rules.Rule1.Violations)
}

func TestAnalyzeConstantDataPassesZoneRulesByConvention(t *testing.T) {
	x := make([]float64, 10)
	for i := range x {
		x[i] = 42
	}
	result := Analyze(x)
	assert.True(t, result.Rules.Rule3.Cumple)
	assert.True(t, result.Rules.Rule4.Cumple)
	assert.True(t, result.Rules.Rule5.Cumple)
	assert.True(t, result.Rules.Rule1.Cumple)
	assert.Zero(t, result.Sigma)
}

func TestMovingRanges(t *testing.T) {
	mr := MovingRanges([]float64{1, 3, 2, 6})
	assert.Equal(t, []float64{2, 1, 4}, mr)
}

func TestMovingRangesShortInput(t *testing.T) {
	assert.Nil(t, MovingRanges([]float64{1}))
	assert.Nil(t, MovingRanges(nil))
}
