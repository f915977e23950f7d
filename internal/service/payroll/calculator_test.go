package payroll

import (
	"context"
	"testing"
	"time"

	"staffportal/backend/internal/entity"
	"staffportal/backend/internal/repository/postgres/attendance"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type fakeEmployees struct {
	detail entity.Employee
	err    error
}

func (f fakeEmployees) GetById(ctx context.Context, id int) (entity.Employee, error) {
	return f.detail, f.err
}

type fakeRecords struct {
	records []attendance.DayRecord
	err     error
}

func (f fakeRecords) GetRange(ctx context.Context, employeeID int, from, to date.Date) ([]attendance.DayRecord, error) {
	return f.records, f.err
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestCalculatorForMonth(t *testing.T) {
	employees := fakeEmployees{detail: entity.Employee{
		BasicEntity: entity.BasicEntity{ID: 7},
		FullName:    strPtr("R. Mehta"),
		Salary:      floatPtr(30000),
	}}
	records := fakeRecords{records: []attendance.DayRecord{
		present(2024, time.January, 5),
		present(2024, time.January, 12),
	}}

	calc := NewCalculator(employees, records, DefaultPolicy())

	statement, err := calc.ForMonth(context.Background(), 7, 2, 2024)
	if err != nil {
		t.Fatalf("for month: %v", err)
	}

	if statement.Cycle.Start.Format("2006-01-02") != "2024-01-05" {
		t.Fatalf("unexpected cycle start %s", statement.Cycle.Start)
	}
	if statement.PayableDays != 7 {
		t.Fatalf("expected 7 payable days, got %v", statement.PayableDays)
	}
	if statement.TotalPay != 7000 {
		t.Fatalf("expected total pay 7000, got %v", statement.TotalPay)
	}
}

func TestCalculatorStoreFailureIsNotEmptyAttendance(t *testing.T) {
	employees := fakeEmployees{detail: entity.Employee{
		BasicEntity: entity.BasicEntity{ID: 7},
		Salary:      floatPtr(30000),
	}}
	records := fakeRecords{err: errors.New("connection refused")}

	calc := NewCalculator(employees, records, DefaultPolicy())

	_, err := calc.ForMonth(context.Background(), 7, 2, 2024)
	if err == nil {
		t.Fatalf("expected store failure to surface, not reconcile to zero pay")
	}
}

func TestCalculatorEmployeeLookupFailure(t *testing.T) {
	employees := fakeEmployees{err: errors.New("row not found")}
	calc := NewCalculator(employees, fakeRecords{}, DefaultPolicy())

	if _, err := calc.ForMonth(context.Background(), 99, 2, 2024); err == nil {
		t.Fatalf("expected employee lookup failure to surface")
	}
}
