// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package validation provides JSON schema validation for the optional
// analysis configuration document (spec.md §9).
package validation

import (
	"fmt"
	"strings"

	"embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/v1/*.json
var schemaFS embed.FS

// ConfigValidator validates AnalysisConfig JSON documents against the
// embedded schema.
type ConfigValidator struct {
	schema  *gojsonschema.Schema
	version string
}

// NewConfigValidator creates a validator for the given schema version
// ("" defaults to "v1").
func NewConfigValidator(version string) (*ConfigValidator, error) {
	if version == "" {
		version = "v1"
	}

	schemaPath := fmt.Sprintf("schemas/%s/analysis-config.schema.json", version)
	schemaData, err := schemaFS.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config schema: %w", err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("failed to compile config schema: %w", err)
	}

	return &ConfigValidator{schema: schema, version: version}, nil
}

// ValidateConfig validates an AnalysisConfig JSON document against the
// schema, returning a combined error describing every violation.
func (v *ConfigValidator) ValidateConfig(data []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if !result.Valid() {
		return formatValidationErrors(result.Errors())
	}
	return nil
}

// formatValidationErrors formats schema violations into a readable,
// multi-line message.
func formatValidationErrors(errors []gojsonschema.ResultError) error {
	if len(errors) == 0 {
		return nil
	}

	var msgs []string
	for _, err := range errors {
		field := err.Field()
		if field == "(root)" {
			field = "config"
		}
		msgs = append(msgs, fmt.Sprintf("  - %s: %s", field, err.Description()))
	}

	return fmt.Errorf("validation failed:\n%s", strings.Join(msgs, "\n"))
}
