// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigValidatorDefaultsToV1(t *testing.T) {
	v, err := NewConfigValidator("")
	require.NoError(t, err)
	assert.Equal(t, "v1", v.version)
}

func TestNewConfigValidatorUnknownVersion(t *testing.T) {
	_, err := NewConfigValidator("v99")
	assert.Error(t, err)
}

func TestValidateConfigAcceptsPartialOverride(t *testing.T) {
	v, err := NewConfigValidator("v1")
	require.NoError(t, err)

	doc := []byte(`{"thresholds": {"cp_adequate": 1.25}}`)
	assert.NoError(t, v.ValidateConfig(doc))
}

func TestValidateConfigRejectsOutOfRangeThreshold(t *testing.T) {
	v, err := NewConfigValidator("v1")
	require.NoError(t, err)

	doc := []byte(`{"thresholds": {"grr_acceptable": 150}}`)
	assert.Error(t, v.ValidateConfig(doc))
}

func TestValidateConfigRejectsWrongType(t *testing.T) {
	v, err := NewConfigValidator("v1")
	require.NoError(t, err)

	doc := []byte(`{"ndc_cap": "lots"}`)
	assert.Error(t, v.ValidateConfig(doc))
}

func TestValidateConfigRejectsInvalidJSON(t *testing.T) {
	v, err := NewConfigValidator("v1")
	require.NoError(t, err)

	assert.Error(t, v.ValidateConfig([]byte(`{not json`)))
}
