// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package numerics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErf(t *testing.T) {
	assert.InDelta(t, 0.0, Erf(0), 1e-3)
	assert.Greater(t, Erf(3), 0.999)
	assert.Less(t, Erf(-3), -0.999)
	assert.InDelta(t, -Erf(1.5), Erf(-1.5), 1e-9)
}

func TestNormalCDF(t *testing.T) {
	assert.InDelta(t, 0.5, NormalCDF(0), 1e-9)
	for _, z := range []float64{0.1, 0.5, 1.0, 1.96, 2.5} {
		assert.InDelta(t, 1.0, NormalCDF(z)+NormalCDF(-z), 1e-3)
	}
}

func TestNormalPPFRoundTrip(t *testing.T) {
	for _, p := range []float64{0.01, 0.05, 0.1, 0.25, 0.5, 0.75, 0.9, 0.95, 0.99} {
		z, err := NormalPPF(p)
		require.NoError(t, err)
		assert.InDelta(t, p, NormalCDF(z), 1e-3)
	}
}

func TestNormalPPFDomainError(t *testing.T) {
	_, err := NormalPPF(0)
	require.Error(t, err)
	_, err = NormalPPF(1)
	require.Error(t, err)
	_, err = NormalPPF(-0.1)
	require.Error(t, err)
}

func TestLogGammaMatchesFactorials(t *testing.T) {
	// Gamma(n) = (n-1)! for positive integers.
	factorials := []float64{1, 1, 2, 6, 24, 120, 720, 5040}
	for n := 1; n <= 8; n++ {
		lg, err := LogGamma(float64(n))
		require.NoError(t, err)
		assert.InDelta(t, math.Log(factorials[n-1]), lg, 1e-6)
	}
}

func TestLogGammaDomainError(t *testing.T) {
	_, err := LogGamma(0)
	require.Error(t, err)
	_, err = LogGamma(-3)
	require.Error(t, err)
}

func TestRegularizedIncompleteGammaMonotone(t *testing.T) {
	a := 2.5
	prev := -1.0
	for _, x := range []float64{0.1, 0.5, 1, 2, 5, 10, 20} {
		v, err := RegularizedIncompleteGamma(a, x)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, prev)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		prev = v
	}
	v, err := RegularizedIncompleteGamma(a, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-6)
}

func TestRegularizedIncompleteBetaSymmetry(t *testing.T) {
	a, b, x := 3.0, 5.0, 0.4
	ix, err := RegularizedIncompleteBeta(a, b, x)
	require.NoError(t, err)
	iComplement, err := RegularizedIncompleteBeta(b, a, 1-x)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ix+iComplement, 1e-6)
}

func TestRegularizedIncompleteBetaMonotone(t *testing.T) {
	prev := -1.0
	for _, x := range []float64{0.05, 0.2, 0.4, 0.6, 0.8, 0.95} {
		v, err := RegularizedIncompleteBeta(2, 3, x)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestFSurvivalBounds(t *testing.T) {
	p, err := FSurvival(0, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	p, err = FSurvival(1000, 3, 10)
	require.NoError(t, err)
	assert.Less(t, p, 0.01)
}

func TestFSurvivalDomainError(t *testing.T) {
	_, err := FSurvival(-1, 3, 10)
	require.Error(t, err)
	_, err = FSurvival(1, 0, 10)
	require.Error(t, err)
}
