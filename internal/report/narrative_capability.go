// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package report

import (
	"fmt"
	"strings"

	"github.com/andescore/qcstat/pkg/types"
)

// BuildCapabilityNarrative assembles the Process Capability markdown
// report in the fixed order of spec.md §4.8: basic stats -> normality
// -> stability -> capability (when present).
func BuildCapabilityNarrative(result types.CapacidadProcesoResult) string {
	var b strings.Builder

	b.WriteString("# Análisis de Capacidad de Proceso\n\n")

	b.WriteString("## Estadísticas descriptivas\n\n")
	s := result.BasicStatistics
	fmt.Fprintf(&b, "- N: %d\n", s.N)
	fmt.Fprintf(&b, "- Media: %.4f\n", s.Mean)
	fmt.Fprintf(&b, "- Desviación estándar: %.4f\n", s.StdDev)
	fmt.Fprintf(&b, "- Mínimo: %.4f, Máximo: %.4f, Rango: %.4f\n", s.Min, s.Max, s.Range)
	fmt.Fprintf(&b, "- Mediana: %.4f\n\n", s.Median)

	if len(result.Warnings) > 0 {
		b.WriteString("### Advertencias\n\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Prueba de normalidad\n\n")
	writeNormalitySection(&b, result.Normality)

	b.WriteString("## Estabilidad del proceso (I-MR)\n\n")
	writeStabilitySection(&b, result.Stability)

	if result.Capability != nil {
		b.WriteString("## Capacidad del proceso\n\n")
		writeCapabilitySection(&b, *result.Capability)
	}

	return b.String()
}

func writeNormalitySection(b *strings.Builder, n types.NormalityResult) {
	fmt.Fprintf(b, "- Estadístico A²: %.4f, p-valor: %.4f\n", n.ADStatistic, n.PValue)
	fmt.Fprintf(b, "- Método: %s\n", n.Method)
	fmt.Fprintf(b, "%s\n\n", n.Conclusion)
	if n.FittedDistribution != nil {
		fmt.Fprintf(b, "Distribución ajustada: %s (AIC=%.2f)\n\n", n.FittedDistribution.Distribution, n.FittedDistribution.AIC)
	}
}

func writeStabilitySection(b *strings.Builder, s types.StabilityResult) {
	fmt.Fprintf(b, "- Límites de control (carta I): LCI=%.4f, LC=%.4f, LCS=%.4f\n", s.IChart.LCL, s.IChart.Center, s.IChart.UCL)
	fmt.Fprintf(b, "- Límites de control (carta MR): LC=%.4f, LCS=%.4f\n", s.MRChart.Center, s.MRChart.UCL)
	fmt.Fprintf(b, "- Sigma dentro de subgrupo: %.4f\n", s.Sigma)
	fmt.Fprintf(b, "%s\n\n", s.Conclusion)
}

func writeCapabilitySection(b *strings.Builder, c types.CapabilityResult) {
	fmt.Fprintf(b, "- Método: %s\n", c.Method)
	writeIndex(b, "Cp", c.Cp)
	writeIndex(b, "Cpk", c.Cpk)
	writeIndex(b, "Pp", c.Pp)
	writeIndex(b, "Ppk", c.Ppk)
	fmt.Fprintf(b, "- Clasificación Cpk: %s\n", c.CpkClassification)
	fmt.Fprintf(b, "- Clasificación Ppk: %s\n", c.PpkClassification)
	fmt.Fprintf(b, "- PPM total estimado: %d (inferior=%d, superior=%d)\n\n", c.PPM.Total, c.PPM.Below, c.PPM.Above)
}

func writeIndex(b *strings.Builder, label string, v *float64) {
	if v == nil {
		fmt.Fprintf(b, "- %s: no definido (sigma <= 0)\n", label)
		return
	}
	fmt.Fprintf(b, "- %s: %.4f\n", label, *v)
}
