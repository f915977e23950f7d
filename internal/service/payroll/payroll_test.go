package payroll

import (
	"testing"
	"time"

	"staffportal/backend/internal/repository/postgres/attendance"

	"github.com/Azure/go-autorest/autorest/date"
)

func d(year int, month time.Month, day int) date.Date {
	return date.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func present(year int, month time.Month, day int) attendance.DayRecord {
	return attendance.DayRecord{WorkDay: d(year, month, day), Status: StatusPresent, ComeTime: "09:12"}
}

func TestComputeEmptyCycleEarnsNothing(t *testing.T) {
	result := Compute(nil, 20000, d(2024, time.January, 5), d(2024, time.February, 4), DefaultPolicy())

	if result.TotalPay != 0 {
		t.Fatalf("expected zero pay, got %v", result.TotalPay)
	}
	if result.PayableDays != 0 {
		t.Fatalf("expected zero payable days, got %v", result.PayableDays)
	}
	if len(result.Ledger) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(result.Ledger))
	}
}

func TestComputeJanuaryCycleScenario(t *testing.T) {
	// Salary 30,000; Present on Jan 5 and Jan 12 (both Fridays); cycle
	// 2024-01-05..2024-02-04 contains five Sundays (Jan 7, 14, 21, 28, Feb 4).
	records := []attendance.DayRecord{
		present(2024, time.January, 5),
		present(2024, time.January, 12),
	}

	result := Compute(records, 30000, d(2024, time.January, 5), d(2024, time.February, 4), DefaultPolicy())

	if len(result.Ledger) != 31 {
		t.Fatalf("expected 31 ledger entries, got %d", len(result.Ledger))
	}
	if result.PayableDays != 7 {
		t.Fatalf("expected 7 payable days (5 Sundays + 2 Presents), got %v", result.PayableDays)
	}
	if want := 30000.0 / 30.0 * 7; result.TotalPay != want {
		t.Fatalf("expected total pay %v, got %v", want, result.TotalPay)
	}

	sundays := 0
	for _, entry := range result.Ledger {
		if entry.Day == "Sunday" {
			sundays++
			if entry.Credit != 1.0 {
				t.Fatalf("Sunday %s credited %v, expected 1.0", entry.Date, entry.Credit)
			}
		}
	}
	if sundays != 5 {
		t.Fatalf("expected 5 Sundays in ledger, got %d", sundays)
	}
}

func TestComputeLedgerCoversEveryDayOnce(t *testing.T) {
	records := []attendance.DayRecord{present(2024, time.March, 10)}

	start, end := d(2024, time.March, 5), d(2024, time.April, 4)
	result := Compute(records, 15000, start, end, DefaultPolicy())

	wantLen := int(end.Sub(start.Time).Hours()/24) + 1
	if len(result.Ledger) != wantLen {
		t.Fatalf("expected %d ledger entries, got %d", wantLen, len(result.Ledger))
	}

	seen := map[string]bool{}
	expected := start.Time
	for _, entry := range result.Ledger {
		key := entry.Date.Format("2006-01-02")
		if seen[key] {
			t.Fatalf("duplicate ledger entry for %s", key)
		}
		seen[key] = true
		if !entry.Date.Time.Equal(expected) {
			t.Fatalf("ledger gap: expected %s, got %s", expected.Format("2006-01-02"), key)
		}
		expected = expected.AddDate(0, 0, 1)
	}
}

func TestComputeHalfDayCreditsHalf(t *testing.T) {
	// 2024-03-06 is a Wednesday.
	records := []attendance.DayRecord{
		{WorkDay: d(2024, time.March, 6), Status: StatusHalfDay, ComeTime: "11:02"},
	}

	result := Compute(records, 30000, d(2024, time.March, 5), d(2024, time.March, 7), DefaultPolicy())

	if result.PayableDays != 0.5 {
		t.Fatalf("expected 0.5 payable days, got %v", result.PayableDays)
	}
	if want := 30000.0 / 30.0 * 0.5; result.TotalPay != want {
		t.Fatalf("expected total pay %v, got %v", want, result.TotalPay)
	}
}

func TestComputeSundayHalfDayForcedToFullCredit(t *testing.T) {
	// 2024-03-10 is a Sunday; the cycle-wide rule overrides the half credit.
	records := []attendance.DayRecord{
		{WorkDay: d(2024, time.March, 10), Status: StatusHalfDay, ComeTime: "11:40"},
	}

	result := Compute(records, 30000, d(2024, time.March, 10), d(2024, time.March, 10), DefaultPolicy())

	if result.PayableDays != 1.0 {
		t.Fatalf("expected Sunday forced to 1.0, got %v", result.PayableDays)
	}
	if result.Ledger[0].Note == "" {
		t.Fatalf("expected a note on the forced weekly-off credit")
	}
}

func TestComputeMissingDaysAreAbsent(t *testing.T) {
	records := []attendance.DayRecord{present(2024, time.March, 5)}

	result := Compute(records, 30000, d(2024, time.March, 5), d(2024, time.March, 8), DefaultPolicy())

	// Mar 5 Present, Mar 6-8 are Wed-Fri with no records.
	for _, entry := range result.Ledger[1:] {
		if entry.Status != StatusAbsent || entry.Credit != 0 {
			t.Fatalf("day %s: expected ABSENT/0, got %s/%v", entry.Date, entry.Status, entry.Credit)
		}
	}
	if result.PayableDays != 1.0 {
		t.Fatalf("expected 1.0 payable day, got %v", result.PayableDays)
	}
}

func TestComputeWeeklyOffNoneRule(t *testing.T) {
	policy := DefaultPolicy()
	policy.WeeklyOffRule = WeeklyOffNone

	records := []attendance.DayRecord{present(2024, time.March, 5)}

	// 2024-03-10 is a Sunday with no record.
	result := Compute(records, 30000, d(2024, time.March, 5), d(2024, time.March, 11), policy)

	if result.PayableDays != 1.0 {
		t.Fatalf("expected only the Present day credited, got %v", result.PayableDays)
	}
}

func TestComputeInvertedRangeProducesEmptyLedger(t *testing.T) {
	records := []attendance.DayRecord{present(2024, time.March, 5)}

	result := Compute(records, 30000, d(2024, time.April, 1), d(2024, time.March, 1), DefaultPolicy())

	if len(result.Ledger) != 0 || result.TotalPay != 0 || result.PayableDays != 0 {
		t.Fatalf("expected empty result for inverted range, got %+v", result)
	}
}

func TestComputeZeroSalary(t *testing.T) {
	records := []attendance.DayRecord{present(2024, time.March, 5)}

	result := Compute(records, 0, d(2024, time.March, 5), d(2024, time.March, 7), DefaultPolicy())

	if result.TotalPay != 0 {
		t.Fatalf("expected zero pay for zero salary, got %v", result.TotalPay)
	}
	if result.PayableDays != 1.0 {
		t.Fatalf("ledger should still credit days, got %v", result.PayableDays)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	records := []attendance.DayRecord{
		present(2024, time.January, 5),
		{WorkDay: d(2024, time.January, 8), Status: StatusHalfDay, ComeTime: "11:15"},
	}

	first := Compute(records, 25000, d(2024, time.January, 5), d(2024, time.February, 4), DefaultPolicy())
	second := Compute(records, 25000, d(2024, time.January, 5), d(2024, time.February, 4), DefaultPolicy())

	if first.TotalPay != second.TotalPay || first.PayableDays != second.PayableDays {
		t.Fatalf("expected identical totals: %+v vs %+v", first, second)
	}
	if len(first.Ledger) != len(second.Ledger) {
		t.Fatalf("expected identical ledgers")
	}
	for i := range first.Ledger {
		if first.Ledger[i] != second.Ledger[i] {
			t.Fatalf("ledger entry %d differs", i)
		}
	}
}
