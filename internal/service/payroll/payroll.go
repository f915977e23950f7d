package payroll

import (
	"time"

	"staffportal/backend/internal/repository/postgres/attendance"

	"github.com/Azure/go-autorest/autorest/date"
)

// Stored attendance statuses. ABSENT is implicit: a day without a record is
// absent, the store never holds an ABSENT row.
const (
	StatusPresent   = "PRESENT"
	StatusHalfDay   = "HALF_DAY"
	StatusAbsent    = "ABSENT"
	StatusWeeklyOff = "WEEKLY_OFF"
)

// monthDivisor is the fixed divisor for the daily rate. The product always
// divides the monthly salary by 30, never by the actual day count of the
// month or the cycle.
const monthDivisor = 30.0

// LedgerEntry is one reconciled calendar day.
type LedgerEntry struct {
	Date     date.Date `json:"date"`
	Day      string    `json:"day"`
	Status   string    `json:"status"`
	Credit   float64   `json:"credit"`
	ComeTime string    `json:"come_time,omitempty"`
	Address  string    `json:"address,omitempty"`
	Note     string    `json:"note,omitempty"`
}

type Result struct {
	TotalPay    float64       `json:"total_pay"`
	PayableDays float64       `json:"payable_days"`
	Ledger      []LedgerEntry `json:"ledger"`
}

// Compute reconciles sparse day records against every calendar day in
// [start, end] and derives the payable total. It is a pure read-side
// computation: identical inputs always produce identical output.
//
// An employee with zero records in the whole cycle earns nothing, Sundays
// included. The guard prevents fabricating weekly-off credit for someone who
// never worked during the cycle.
func Compute(records []attendance.DayRecord, baseSalary float64, start, end date.Date, policy Policy) Result {
	if len(records) == 0 {
		return Result{}
	}

	byDay := make(map[string]attendance.DayRecord, len(records))
	for _, rec := range records {
		byDay[rec.WorkDay.Format("2006-01-02")] = rec
	}

	// Any attendance in the cycle pays every Sunday in the cycle. This is a
	// cycle-wide flag, not a per-week adjacency check.
	hasWorked := len(byDay) > 0

	var result Result

	for day := start.Time; !day.After(end.Time); day = day.AddDate(0, 0, 1) {
		rec, marked := byDay[day.Format("2006-01-02")]

		status := StatusAbsent
		credit := 0.0
		if marked {
			status = rec.Status
			switch rec.Status {
			case StatusPresent:
				credit = 1.0
			case StatusHalfDay:
				credit = 0.5
			}
		}

		note := ""
		if day.Weekday() == time.Sunday && policy.WeeklyOffRule == WeeklyOffCycle && hasWorked {
			if !marked {
				status = StatusWeeklyOff
			}
			if credit < 1.0 {
				note = "paid weekly off"
			}
			credit = 1.0
		}

		entry := LedgerEntry{
			Date:   date.Date{Time: day},
			Day:    day.Weekday().String(),
			Status: status,
			Credit: credit,
			Note:   note,
		}
		if marked {
			entry.ComeTime = rec.ComeTime
			entry.Address = rec.Address
		}

		result.Ledger = append(result.Ledger, entry)
		result.PayableDays += credit
	}

	result.TotalPay = baseSalary / monthDivisor * result.PayableDays

	return result
}
