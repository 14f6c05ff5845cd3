package funding

import (
	"testing"

	"charityd/internal/money"
)

func TestProgressZeroOrNegativeTarget(t *testing.T) {
	cases := []struct {
		target    int64
		collected int64
	}{
		{0, 0},
		{0, 25000},
		{-100, 99999},
	}
	for _, tc := range cases {
		for _, mode := range []Mode{ModeEntity, ModeMonthlyGoal} {
			if got := Progress(tc.target, tc.collected, mode); got != 0 {
				t.Fatalf("Progress(%d, %d, %v) = %v, want 0", tc.target, tc.collected, mode, got)
			}
		}
	}
}

func TestProgressEntityRoundsToOneDecimal(t *testing.T) {
	if got := Progress(100000, 25000, ModeEntity); got != 25.0 {
		t.Fatalf("Progress = %v, want 25.0", got)
	}
	// 1/3 → 33.333... → 33.3
	if got := Progress(30000, 10000, ModeEntity); got != 33.3 {
		t.Fatalf("Progress = %v, want 33.3", got)
	}
	if got := Progress(30000, 20000, ModeEntity); got != 66.7 {
		t.Fatalf("Progress = %v, want 66.7", got)
	}
}

func TestProgressEntityUnclamped(t *testing.T) {
	if got := Progress(100000, 250000, ModeEntity); got != 250.0 {
		t.Fatalf("over-funded Progress = %v, want 250.0", got)
	}
}

func TestProgressMonthlyGoalClamped(t *testing.T) {
	if got := Progress(500000, 600000, ModeMonthlyGoal); got != 100 {
		t.Fatalf("Progress = %v, want 100", got)
	}
	if got := Progress(500000, 500000, ModeMonthlyGoal); got != 100 {
		t.Fatalf("Progress = %v, want 100", got)
	}
}

func TestProgressMonthlyGoalTwoDecimals(t *testing.T) {
	// 12345/500000 → 2.469 → 2.47
	if got := Progress(500000, 12345, ModeMonthlyGoal); got != 2.47 {
		t.Fatalf("Progress = %v, want 2.47", got)
	}
}

func TestComputeFillsAmounts(t *testing.T) {
	f := money.NewFormatter("en", "RUB", "₽")
	s := Compute(f, 100000, 25000, ModeEntity)
	if s.ProgressPercentage != 25.0 {
		t.Fatalf("ProgressPercentage = %v, want 25.0", s.ProgressPercentage)
	}
	if s.Target.Minor != 100000 || s.Collected.Minor != 25000 {
		t.Fatalf("amounts = %d/%d, want 100000/25000", s.Target.Minor, s.Collected.Minor)
	}
	if s.Target.Formatted != "1,000 ₽" {
		t.Fatalf("Target.Formatted = %q, want %q", s.Target.Formatted, "1,000 ₽")
	}
}
