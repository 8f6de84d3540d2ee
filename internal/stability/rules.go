// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package stability

import (
	"github.com/andescore/qcstat/pkg/types"
)

// runLength is the number of consecutive points the trend/zone/pattern
// rules require (spec.md §4.6: "7+ consecutive points").
const runLength = 7

// EvaluateRules runs the seven Western-Electric-style stability rules
// against the I-chart points and limits (spec.md §4.6). Rules 2-7
// trivially pass when n is below the run length they require.
func EvaluateRules(x []float64, center, ucl, lcl float64) types.StabilityRules {
	return types.StabilityRules{
		Rule1: rule1(x, ucl, lcl),
		Rule2: rule2(x),
		Rule3: rule3(x, center, ucl),
		Rule4: rule4(x, center, ucl),
		Rule5: rule5(x, center, lcl),
		Rule6: rule6(x),
		Rule7: rule7(x, center),
	}
}

// rule1: any point strictly outside [LCL, UCL].
func rule1(x []float64, ucl, lcl float64) types.RuleResult {
	var violations []types.RuleViolation
	for i, v := range x {
		switch {
		case v > ucl:
			violations = append(violations, types.RuleViolation{Index: i, Value: v, Limit: "UCL"})
		case v < lcl:
			violations = append(violations, types.RuleViolation{Index: i, Value: v, Limit: "LCL"})
		}
	}
	return types.RuleResult{Cumple: len(violations) == 0, Violations: violations}
}

// rule2: 7 consecutive non-zero differences of the same sign (8
// monotone points).
func rule2(x []float64) types.RuleResult {
	var violations []types.RuleViolation
	if len(x) < runLength+1 {
		return types.RuleResult{Cumple: true}
	}

	direction := 0
	runStart := 0
	count := 0
	recorded := false

	for i := 1; i < len(x); i++ {
		d := sign(x[i] - x[i-1])
		if d == 0 {
			direction, count, recorded = 0, 0, false
			continue
		}
		if d == direction {
			count++
		} else {
			direction = d
			count = 1
			runStart = i - 1
			recorded = false
		}
		if count >= runLength && !recorded {
			dir := "up"
			if direction < 0 {
				dir = "down"
			}
			violations = append(violations, types.RuleViolation{Start: runStart, End: i, Direction: dir})
			recorded = true
		}
	}
	return types.RuleResult{Cumple: len(violations) == 0, Violations: violations}
}

// rule3: 7+ consecutive points inside the center +/- 1 sigma zone.
// Zero-variation data (sigma == 0) passes trivially by convention
// (spec.md §9 Open Questions).
func rule3(x []float64, center, ucl float64) types.RuleResult {
	sigma := (ucl - center) / 3
	if sigma <= 0 {
		return types.RuleResult{Cumple: true}
	}
	cond := make([]bool, len(x))
	for i, v := range x {
		d := v - center
		if d < 0 {
			d = -d
		}
		cond[i] = d <= sigma
	}
	return runResult(cond, nil)
}

// rule4: 7+ consecutive points in [center+2sigma, UCL].
func rule4(x []float64, center, ucl float64) types.RuleResult {
	sigma := (ucl - center) / 3
	if sigma <= 0 {
		return types.RuleResult{Cumple: true}
	}
	lo := center + 2*sigma
	cond := make([]bool, len(x))
	for i, v := range x {
		cond[i] = v >= lo && v <= ucl
	}
	return runResult(cond, nil)
}

// rule5: 7+ consecutive points in [LCL, center-2sigma].
func rule5(x []float64, center, lcl float64) types.RuleResult {
	sigma := (center - lcl) / 3
	if sigma <= 0 {
		return types.RuleResult{Cumple: true}
	}
	hi := center - 2*sigma
	cond := make([]bool, len(x))
	for i, v := range x {
		cond[i] = v <= hi && v >= lcl
	}
	return runResult(cond, nil)
}

// rule6: alternating direction (zig-zag) for 7+ consecutive
// transitions (8 points).
func rule6(x []float64) types.RuleResult {
	var violations []types.RuleViolation
	if len(x) < runLength+1 {
		return types.RuleResult{Cumple: true}
	}

	runStart := 0
	count := 0
	var lastSign int
	recorded := false

	for i := 1; i < len(x); i++ {
		d := sign(x[i] - x[i-1])
		if d == 0 {
			count, recorded = 0, false
			lastSign = 0
			continue
		}
		if i == 1 || lastSign == 0 {
			count = 1
			runStart = i - 1
		} else if d == -lastSign {
			count++
		} else {
			count = 1
			runStart = i - 1
			recorded = false
		}
		lastSign = d
		if count >= runLength && !recorded {
			violations = append(violations, types.RuleViolation{Start: runStart, End: i, Pattern: "alternating"})
			recorded = true
		}
	}
	return types.RuleResult{Cumple: len(violations) == 0, Violations: violations}
}

// rule7: 7+ consecutive points strictly on one side of the center
// line.
func rule7(x []float64, center float64) types.RuleResult {
	var violations []types.RuleViolation
	runStart := 0
	count := 0
	var side string
	for i, v := range x {
		var thisSide string
		switch {
		case v > center:
			thisSide = "above"
		case v < center:
			thisSide = "below"
		default:
			thisSide = ""
		}
		if thisSide == "" || thisSide != side {
			side = thisSide
			runStart = i
			count = 1
		} else {
			count++
		}
		if thisSide != "" && count >= runLength {
			violations = appendSideViolation(violations, runStart, i, side)
		}
	}
	return types.RuleResult{Cumple: len(violations) == 0, Violations: violations}
}

// appendSideViolation records one violation per qualifying run,
// extending the prior record's End instead of duplicating it.
func appendSideViolation(violations []types.RuleViolation, start, end int, side string) []types.RuleViolation {
	if len(violations) > 0 {
		last := &violations[len(violations)-1]
		if last.Side == side && last.Start == start {
			last.End = end
			return violations
		}
	}
	return append(violations, types.RuleViolation{Start: start, End: end, Side: side})
}

// runResult scans a boolean membership slice for maximal runs of
// length >= runLength and reports one violation per run.
func runResult(cond []bool, _ []int) types.RuleResult {
	var violations []types.RuleViolation
	start := -1
	for i := 0; i <= len(cond); i++ {
		in := i < len(cond) && cond[i]
		if in && start == -1 {
			start = i
		}
		if !in && start != -1 {
			if i-start >= runLength {
				violations = append(violations, types.RuleViolation{Start: start, End: i - 1})
			}
			start = -1
		}
	}
	return types.RuleResult{Cumple: len(violations) == 0, Violations: violations}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
