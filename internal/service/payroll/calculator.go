package payroll

import (
	"context"

	"staffportal/backend/internal/entity"
	"staffportal/backend/internal/repository/postgres/attendance"

	"github.com/Azure/go-autorest/autorest/date"
)

type EmployeeStore interface {
	GetById(ctx context.Context, id int) (entity.Employee, error)
}

type AttendanceStore interface {
	GetRange(ctx context.Context, employeeID int, from, to date.Date) ([]attendance.DayRecord, error)
}

// Statement is the reconciliation output for one employee and one cycle.
type Statement struct {
	EmployeeID  int     `json:"employee_id"`
	FullName    string  `json:"full_name"`
	Designation string  `json:"designation"`
	Salary      float64 `json:"salary"`
	Cycle       Cycle   `json:"cycle"`
	Result
}

// Calculator fetches the inputs and runs Compute. A store failure is returned
// as-is: it must never be mistaken for an empty attendance set, or employees
// with real attendance would silently reconcile to zero pay.
type Calculator struct {
	employees EmployeeStore
	records   AttendanceStore
	policy    Policy
}

func NewCalculator(employees EmployeeStore, records AttendanceStore, policy Policy) *Calculator {
	return &Calculator{employees: employees, records: records, policy: policy}
}

func (c Calculator) Policy() Policy {
	return c.policy
}

// ForMonth reconciles the pay cycle referenced by (month, year).
func (c Calculator) ForMonth(ctx context.Context, employeeID, month, year int) (Statement, error) {
	cycle, err := CycleFor(month, year, c.policy.CycleBoundary)
	if err != nil {
		return Statement{}, err
	}

	detail, err := c.employees.GetById(ctx, employeeID)
	if err != nil {
		return Statement{}, err
	}

	records, err := c.records.GetRange(ctx, employeeID, cycle.Start, cycle.End)
	if err != nil {
		return Statement{}, err
	}

	salary := 0.0
	if detail.Salary != nil {
		salary = *detail.Salary
	}

	statement := Statement{
		EmployeeID: detail.ID,
		Salary:     salary,
		Cycle:      cycle,
		Result:     Compute(records, salary, cycle.Start, cycle.End, c.policy),
	}
	if detail.FullName != nil {
		statement.FullName = *detail.FullName
	}
	if detail.Designation != nil {
		statement.Designation = *detail.Designation
	}

	return statement, nil
}
