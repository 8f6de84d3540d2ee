// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package msa

import (
	"fmt"
	"strings"

	"github.com/andescore/qcstat/pkg/types"
)

// BuildNarrative assembles the three-part Spanish markdown report
// (técnico / conclusión estadística / lenguaje sencillo) from the
// result tables, branching on classification, dominant source, and
// the optional bias side panel (spec.md §4.3).
func BuildNarrative(result types.MSAResult) string {
	var b strings.Builder

	b.WriteString("# Análisis del Sistema de Medición (Gauge R&R)\n\n")

	b.WriteString("## Resultados técnicos\n\n")
	fmt.Fprintf(&b, "- Repetibilidad (%%EV): %.2f%%\n", result.PercentRepeatability)
	fmt.Fprintf(&b, "- Reproducibilidad (%%AV): %.2f%%\n", result.PercentReproducibility)
	fmt.Fprintf(&b, "- Variación parte a parte (%%PV): %.2f%%\n", result.PercentPartToPart)
	fmt.Fprintf(&b, "- %%GRR total: %.2f%%\n", result.PercentGRR)
	fmt.Fprintf(&b, "- Número de categorías distintas (ndc): %d\n", result.NDC)
	fmt.Fprintf(&b, "- Partes: %d, Operadores: %d, Réplicas: %d\n\n", result.NParts, result.NOperators, result.NReplicates)

	b.WriteString("### Tabla ANOVA\n\n")
	b.WriteString("| Fuente | SS | DF | MS | F | p |\n|---|---|---|---|---|---|\n")
	for _, row := range result.ANOVA {
		fmt.Fprintf(&b, "| %s | %.4f | %d | %.4f | %.4f | %.4f |\n", row.Source, row.SS, row.DF, row.MS, row.F, row.P)
	}
	b.WriteString("\n")

	b.WriteString("## Conclusión estadística\n\n")
	fmt.Fprintf(&b, "%s\n\n", statisticalConclusion(result))

	b.WriteString("## En términos sencillos\n\n")
	fmt.Fprintf(&b, "%s\n", plainLanguageConclusion(result))

	if result.Bias != nil {
		b.WriteString("\n### Sesgo respecto al valor nominal\n\n")
		fmt.Fprintf(&b, "- Sesgo: %.4f\n", result.Bias.Bias)
		fmt.Fprintf(&b, "- Estadístico t: %.4f (df=%d, p=%.4f)\n", result.Bias.TStatistic, result.Bias.DF, result.Bias.PValue)
		if result.Bias.Significant {
			b.WriteString("- El sesgo es estadísticamente significativo (p < 0.05).\n")
		} else {
			b.WriteString("- El sesgo no es estadísticamente significativo.\n")
		}
	}

	return b.String()
}

func statisticalConclusion(result types.MSAResult) string {
	classLabel := map[types.Classification]string{
		types.ClassAceptable:   "aceptable",
		types.ClassMarginal:    "marginal",
		types.ClassInaceptable: "inaceptable",
	}[result.Classification]

	sourceLabel := map[types.DominantSource]string{
		types.SourceRepeatability:   "la repetibilidad del equipo",
		types.SourceReproducibility: "la reproducibilidad entre operadores",
		types.SourcePartToPart:      "la variación parte a parte",
	}[result.DominantSource]

	return fmt.Sprintf(
		"El sistema de medición se clasifica como **%s** (%%GRR = %.2f%%). "+
			"La fuente dominante de variación es %s.",
		classLabel, result.PercentGRR, sourceLabel,
	)
}

func plainLanguageConclusion(result types.MSAResult) string {
	switch result.Classification {
	case types.ClassAceptable:
		return "El instrumento de medición es confiable: la variación que introduce es pequeña comparada con la variación real entre piezas."
	case types.ClassMarginal:
		return "El instrumento de medición es utilizable pero se recomienda mejorarlo, dependiendo de la criticidad de la aplicación."
	default:
		return "El instrumento de medición no es confiable: una parte importante de la variación observada proviene del propio sistema de medición, no de las piezas."
	}
}
