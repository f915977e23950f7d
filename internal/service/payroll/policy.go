package payroll

import "time"

// Cycle boundary modes. The pay cycle always opens on the 5th of the month
// before the reference month; whether it closes on the 4th or the 5th of the
// reference month is a product decision, so it stays configurable.
const (
	BoundaryFourth = "fourth"
	BoundaryFifth  = "fifth"
)

// Weekly-off rules.
const (
	// WeeklyOffCycle pays every Sunday in the cycle when the employee has at
	// least one attendance record anywhere in that cycle.
	WeeklyOffCycle = "cycle"
	// WeeklyOffNone never credits Sundays without an actual record.
	WeeklyOffNone = "none"
)

// Policy holds the attendance and payroll knobs that varied across the
// product's history. The defaults are the canonical behaviour.
type Policy struct {
	// WeeklyOffRule decides how Sundays are credited.
	WeeklyOffRule string
	// HalfDayCutoff is a clock time ("10:30"); a punch after it records
	// HALF_DAY. Empty disables half-day classification entirely.
	HalfDayCutoff string
	// CycleBoundary is BoundaryFourth or BoundaryFifth.
	CycleBoundary string
	// RequireLocation blocks a punch-in when geolocation cannot be resolved
	// instead of recording the punch without location metadata.
	RequireLocation bool
}

func DefaultPolicy() Policy {
	return Policy{
		WeeklyOffRule: WeeklyOffCycle,
		HalfDayCutoff: "10:30",
		CycleBoundary: BoundaryFourth,
	}
}

// Classify returns the stored status for a punch at the given time.
func (p Policy) Classify(punchedAt time.Time) string {
	if p.HalfDayCutoff == "" {
		return StatusPresent
	}

	cutoff, err := time.Parse("15:04", p.HalfDayCutoff)
	if err != nil {
		return StatusPresent
	}

	punched := punchedAt.Hour()*60 + punchedAt.Minute()
	limit := cutoff.Hour()*60 + cutoff.Minute()
	if punched > limit {
		return StatusHalfDay
	}

	return StatusPresent
}
