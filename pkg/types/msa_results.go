// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

// VarianceComponents holds the ANOVA-method (AIAG) variance-component
// decomposition. Every field is non-negative: negative method-of-moments
// estimates are truncated to zero per spec.md §4.3, and
// Total == Repeatability + Reproducibility + PartToPart to within 1e-9.
type VarianceComponents struct {
	Repeatability   float64 `json:"repeatability"`
	Operator        float64 `json:"operator"`
	Interaction     float64 `json:"interaction"`
	Reproducibility float64 `json:"reproducibility"` // Operator + Interaction
	PartToPart      float64 `json:"part_to_part"`
	Total           float64 `json:"total"`
}

// ANOVARow is one row of the two-way crossed ANOVA table.
type ANOVARow struct {
	Source string  `json:"source"`
	SS     float64 `json:"ss"`
	DF     int     `json:"df"`
	MS     float64 `json:"ms"`
	F      float64 `json:"f,omitempty"`
	P      float64 `json:"p,omitempty"`
}

// OperatorStats holds per-operator descriptive statistics and the
// CV-based consistency ranking (spec.md §4.3).
type OperatorStats struct {
	Operator      string  `json:"operator"`
	Mean          float64 `json:"mean"`
	StdDev        float64 `json:"std_dev"`
	AvgRange      float64 `json:"avg_range"`
	Consistency   float64 `json:"consistency"` // CV-based score, lower is better
	ConsistencyRank int   `json:"consistency_rank"`
}

// Classification is the closed set of MSA / capability classification
// labels.
type Classification string

const (
	ClassAceptable   Classification = "aceptable"
	ClassMarginal    Classification = "marginal"
	ClassInaceptable Classification = "inaceptable"

	ClassExcellent  Classification = "excellent"
	ClassAdequate   Classification = "adequate"
	ClassInadequate Classification = "inadequate"
	ClassPoor       Classification = "poor"
	ClassUnknown    Classification = "unknown"
)

// DominantSource is the closed set of dominant-variation-source labels.
type DominantSource string

const (
	SourceRepeatability   DominantSource = "repeatability"
	SourceReproducibility DominantSource = "reproducibility"
	SourcePartToPart      DominantSource = "part_to_part"
)

// BiasResult is the optional bias side panel computed when an MSA
// analysis is given a Specification nominal value. It holds no
// stability measures.
type BiasResult struct {
	Bias       float64 `json:"bias"`        // grand mean - nominal
	TStatistic float64 `json:"t_statistic"` // one-sample t vs. zero bias
	DF         int     `json:"df"`
	PValue     float64 `json:"p_value"`
	Significant bool   `json:"significant"` // p < 0.05
}

// MSAResult is the full numeric result of an MSA / Gauge R&R analysis.
type MSAResult struct {
	Variance   VarianceComponents `json:"variance_components"`
	PercentRepeatability   float64 `json:"pct_repeatability"`
	PercentReproducibility float64 `json:"pct_reproducibility"`
	PercentPartToPart      float64 `json:"pct_part_to_part"`
	PercentGRR             float64 `json:"pct_grr"` // headline %GRR
	NDC            int            `json:"ndc"`
	Classification Classification `json:"classification"`
	DominantSource DominantSource `json:"dominant_variation"`
	ANOVA          []ANOVARow     `json:"anova"`
	OperatorStats  []OperatorStats `json:"operator_stats"`
	Bias           *BiasResult    `json:"bias,omitempty"`
	NParts         int            `json:"n_parts"`
	NOperators     int            `json:"n_operators"`
	NReplicates    int            `json:"n_replicates"`
}
