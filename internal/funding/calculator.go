// Package funding computes progress percentages for fundable entities.
//
// Two modes exist on purpose: entity-level progress (organization needs,
// projects, stages) stays unclamped so over-funded campaigns remain visible
// as >100%, while monthly-goal progress is clamped to 100 because it feeds
// time-boxed progress bars. Callers choose the mode explicitly.
package funding

import (
	"math"

	"charityd/internal/money"
)

// Mode selects the rounding and clamping rules for a progress computation.
type Mode int

const (
	// ModeEntity rounds to one decimal place and does not clamp.
	ModeEntity Mode = iota
	// ModeMonthlyGoal rounds to two decimal places and clamps at 100.
	ModeMonthlyGoal
)

// Summary is the serializable funding state of one entity, computed fresh on
// every request and never persisted.
type Summary struct {
	Target             money.Amount `json:"target"`
	Collected          money.Amount `json:"collected"`
	ProgressPercentage float64      `json:"progress_percentage"`
}

// Progress returns the collected/target percentage under the given mode.
// A non-positive target always yields 0: there is no meaningful progress
// toward a goal that does not exist, and no division by zero.
func Progress(targetMinor, collectedMinor int64, mode Mode) float64 {
	if targetMinor <= 0 {
		return 0
	}
	pct := float64(collectedMinor) / float64(targetMinor) * 100
	switch mode {
	case ModeMonthlyGoal:
		pct = roundTo(pct, 2)
		if pct > 100 {
			pct = 100
		}
	default:
		pct = roundTo(pct, 1)
	}
	return pct
}

// Compute builds a full Summary with amounts rendered by the formatter.
func Compute(f *money.Formatter, targetMinor, collectedMinor int64, mode Mode) Summary {
	return Summary{
		Target:             f.FromMinor(targetMinor),
		Collected:          f.FromMinor(collectedMinor),
		ProgressPercentage: Progress(targetMinor, collectedMinor, mode),
	}
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
