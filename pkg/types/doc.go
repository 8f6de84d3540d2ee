// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package types defines the public data model shared by the MSA and
// Process Capability analysis pipelines: the input table and column
// mapping, the per-stage result fragments, the assembled report
// document, and the closed set of structured errors each validator can
// return.
package types
