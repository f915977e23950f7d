package payroll

import (
	"context"

	"staffportal/backend/internal/service/payroll"
)

type Calculator interface {
	ForMonth(ctx context.Context, employeeID, month, year int) (payroll.Statement, error)
}
