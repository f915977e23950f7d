package payroll

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

// Cycle is the inclusive date window attendance is reconciled over. It is
// derived from a reference (month, year) and never persisted.
type Cycle struct {
	Start date.Date `json:"start"`
	End   date.Date `json:"end"`
}

// CycleFor derives the pay cycle for a reference month. The window opens on
// the 5th of the previous month; a January reference rolls the start back to
// December of the prior year. The closing day follows the boundary mode.
func CycleFor(month, year int, boundary string) (Cycle, error) {
	if month < 1 || month > 12 {
		return Cycle{}, errors.Errorf("invalid month: %d", month)
	}

	startMonth, startYear := month-1, year
	if month == 1 {
		startMonth, startYear = 12, year-1
	}

	endDay := 4
	switch boundary {
	case BoundaryFourth, "":
	case BoundaryFifth:
		endDay = 5
	default:
		return Cycle{}, errors.Errorf("invalid cycle boundary: %q", boundary)
	}

	start := time.Date(startYear, time.Month(startMonth), 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month), endDay, 0, 0, 0, 0, time.UTC)

	return Cycle{
		Start: date.Date{Time: start},
		End:   date.Date{Time: end},
	}, nil
}

// Days returns the inclusive length of the cycle in days.
func (c Cycle) Days() int {
	if c.Start.After(c.End.Time) {
		return 0
	}
	return int(c.End.Sub(c.Start.Time).Hours()/24) + 1
}
