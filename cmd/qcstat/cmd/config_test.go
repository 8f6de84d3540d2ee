// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andescore/qcstat/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAnalysisConfigDefaultsWhenFlagUnset(t *testing.T) {
	configFile = ""
	cfg, err := loadAnalysisConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAnalysisConfig(), cfg)
}

func TestLoadAnalysisConfigReadsFlagPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"thresholds":{"grr_acceptable":5}}`), 0o644))

	configFile = path
	defer func() { configFile = "" }()

	cfg, err := loadAnalysisConfig()
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Thresholds.GRRAcceptable)
	assert.Equal(t, config.DefaultAnalysisConfig().Thresholds.GRRMarginal, cfg.Thresholds.GRRMarginal)
}

func TestLoadAnalysisConfigRejectsMissingFile(t *testing.T) {
	configFile = "/nonexistent/analysis.json"
	defer func() { configFile = "" }()

	_, err := loadAnalysisConfig()
	assert.Error(t, err)
}
