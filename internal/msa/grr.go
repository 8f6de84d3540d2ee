// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package msa

import (
	"math"

	"github.com/andescore/qcstat/internal/config"
	"github.com/andescore/qcstat/pkg/types"
)

const varianceFloor = 1e-10

// GRRMetrics is the headline Gauge R&R percentage breakdown plus ndc
// and classification (spec.md §4.3).
type GRRMetrics struct {
	PercentRepeatability   float64
	PercentReproducibility float64
	PercentPartToPart      float64
	PercentGRR             float64
	NDC                    int
	Classification         types.Classification
	DominantSource         types.DominantSource
}

// ComputeGRR derives %GRR, ndc, classification, and the dominant
// variation source from the variance components (spec.md §4.3).
// thresholds and ndcCap come from the active AnalysisConfig
// (config.DefaultAnalysisConfig when no override document is given).
func ComputeGRR(v types.VarianceComponents, thresholds config.ClassificationThresholds, ndcCap int) GRRMetrics {
	sigmaRep := math.Sqrt(v.Repeatability)
	sigmaReprod := math.Sqrt(v.Reproducibility)
	sigmaPart := math.Sqrt(v.PartToPart)
	sigmaTotal := math.Sqrt(v.Total)
	sigmaGRR := math.Sqrt(v.Repeatability + v.Reproducibility)

	pct := func(sigma float64) float64 {
		if sigmaTotal < varianceFloor {
			return 0
		}
		return 100 * sigma / sigmaTotal
	}

	pctRep := pct(sigmaRep)
	pctReprod := pct(sigmaReprod)
	pctPart := pct(sigmaPart)
	pctGRR := pct(sigmaGRR)

	classification := classifyGRR(pctGRR, thresholds)

	ndc := ndcCap
	if sigmaGRR >= varianceFloor {
		ndc = int(math.Floor(1.41 * sigmaPart / sigmaGRR))
		if ndc > ndcCap {
			ndc = ndcCap
		}
		if ndc < 0 {
			ndc = 0
		}
	}

	dominant := dominantSource(v.Repeatability, v.Reproducibility, v.PartToPart)

	return GRRMetrics{
		PercentRepeatability:   pctRep,
		PercentReproducibility: pctReprod,
		PercentPartToPart:      pctPart,
		PercentGRR:             pctGRR,
		NDC:                    ndc,
		Classification:         classification,
		DominantSource:         dominant,
	}
}

// classifyGRR applies the spec.md §4.3 boundary semantics: below
// thresholds.GRRAcceptable is aceptable, up to thresholds.GRRMarginal
// is marginal, above is inaceptable.
func classifyGRR(pctGRR float64, thresholds config.ClassificationThresholds) types.Classification {
	switch {
	case pctGRR < thresholds.GRRAcceptable:
		return types.ClassAceptable
	case pctGRR <= thresholds.GRRMarginal:
		return types.ClassMarginal
	default:
		return types.ClassInaceptable
	}
}

// dominantSource picks the largest variance-component source, with
// ties resolved rep > reprod > part-to-part (spec.md §4.3).
func dominantSource(rep, reprod, part float64) types.DominantSource {
	dominant := types.SourceRepeatability
	best := rep
	if reprod > best {
		best = reprod
		dominant = types.SourceReproducibility
	}
	if part > best {
		dominant = types.SourcePartToPart
	}
	return dominant
}
