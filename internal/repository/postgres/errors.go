package postgres

import "github.com/pkg/errors"

var (
	ErrNotFound = errors.New("row not found")

	// ErrAlreadyMarked is reported when a second punch-in arrives for the same
	// employee and work day. The unique (employee_id, work_day) constraint is
	// the only safety net; the losing insert becomes a no-op.
	ErrAlreadyMarked = errors.New("attendance already marked for this day")

	ErrWrongCredential = errors.New("incorrect credential")
)
