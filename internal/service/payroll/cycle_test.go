package payroll

import (
	"testing"
	"time"
)

func TestCycleForFourthBoundary(t *testing.T) {
	cycle, err := CycleFor(3, 2024, BoundaryFourth)
	if err != nil {
		t.Fatalf("cycle for march: %v", err)
	}

	if got := cycle.Start.Format("2006-01-02"); got != "2024-02-05" {
		t.Fatalf("expected start 2024-02-05, got %s", got)
	}
	if got := cycle.End.Format("2006-01-02"); got != "2024-03-04" {
		t.Fatalf("expected end 2024-03-04, got %s", got)
	}
}

func TestCycleForFifthBoundary(t *testing.T) {
	cycle, err := CycleFor(3, 2024, BoundaryFifth)
	if err != nil {
		t.Fatalf("cycle for march: %v", err)
	}

	if got := cycle.End.Format("2006-01-02"); got != "2024-03-05" {
		t.Fatalf("expected end 2024-03-05, got %s", got)
	}
}

func TestCycleForJanuaryRollsBackToDecember(t *testing.T) {
	cycle, err := CycleFor(1, 2024, BoundaryFourth)
	if err != nil {
		t.Fatalf("cycle for january: %v", err)
	}

	if got := cycle.Start.Format("2006-01-02"); got != "2023-12-05" {
		t.Fatalf("expected start 2023-12-05, got %s", got)
	}
	if got := cycle.End.Format("2006-01-02"); got != "2024-01-04" {
		t.Fatalf("expected end 2024-01-04, got %s", got)
	}
}

func TestCycleForRejectsBadInput(t *testing.T) {
	if _, err := CycleFor(13, 2024, BoundaryFourth); err == nil {
		t.Fatalf("expected error for month 13")
	}
	if _, err := CycleFor(3, 2024, "sixth"); err == nil {
		t.Fatalf("expected error for unknown boundary")
	}
}

func TestCycleDays(t *testing.T) {
	cycle, err := CycleFor(2, 2024, BoundaryFourth)
	if err != nil {
		t.Fatalf("cycle for february: %v", err)
	}

	// 2024-01-05 .. 2024-02-04 inclusive.
	if got := cycle.Days(); got != 31 {
		t.Fatalf("expected 31 days, got %d", got)
	}
}

func TestPolicyClassify(t *testing.T) {
	policy := DefaultPolicy()

	onTime := time.Date(2024, time.March, 6, 9, 45, 0, 0, time.UTC)
	if got := policy.Classify(onTime); got != StatusPresent {
		t.Fatalf("expected PRESENT before cutoff, got %s", got)
	}

	atCutoff := time.Date(2024, time.March, 6, 10, 30, 0, 0, time.UTC)
	if got := policy.Classify(atCutoff); got != StatusPresent {
		t.Fatalf("expected PRESENT at cutoff, got %s", got)
	}

	late := time.Date(2024, time.March, 6, 10, 31, 0, 0, time.UTC)
	if got := policy.Classify(late); got != StatusHalfDay {
		t.Fatalf("expected HALF_DAY after cutoff, got %s", got)
	}

	policy.HalfDayCutoff = ""
	if got := policy.Classify(late); got != StatusPresent {
		t.Fatalf("expected PRESENT when half-day is disabled, got %s", got)
	}
}
