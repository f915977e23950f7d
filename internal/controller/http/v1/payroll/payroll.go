package payroll

import (
	"fmt"
	"net/http"
	"reflect"

	"staffportal/backend/foundation/web"
	"staffportal/backend/internal/service/payroll"
	"staffportal/backend/internal/service/report"

	"github.com/pkg/errors"
)

type Controller struct {
	calculator Calculator
}

func NewController(calculator Calculator) *Controller {
	return &Controller{calculator: calculator}
}

func (uc Controller) statement(c *web.Context) (payroll.Statement, error) {
	employeeID, ok := c.GetQueryFunc(reflect.Int, "employee_id").(*int)
	if !ok || employeeID == nil {
		return payroll.Statement{}, web.NewRequestError(errors.New("employee_id parameter is required"), http.StatusBadRequest)
	}
	month, ok := c.GetQueryFunc(reflect.Int, "month").(*int)
	if !ok || month == nil {
		return payroll.Statement{}, web.NewRequestError(errors.New("month parameter is required"), http.StatusBadRequest)
	}
	year, ok := c.GetQueryFunc(reflect.Int, "year").(*int)
	if !ok || year == nil {
		return payroll.Statement{}, web.NewRequestError(errors.New("year parameter is required"), http.StatusBadRequest)
	}
	if err := c.ValidQuery(); err != nil {
		return payroll.Statement{}, err
	}

	return uc.calculator.ForMonth(c.Ctx, *employeeID, *month, *year)
}

// Get returns the reconciled ledger and totals as JSON.
func (uc Controller) Get(c *web.Context) error {
	statement, err := uc.statement(c)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   statement,
		"status": true,
	}, http.StatusOK)
}

// Export serves the ledger as a downloadable spreadsheet.
func (uc Controller) Export(c *web.Context) error {
	statement, err := uc.statement(c)
	if err != nil {
		return c.RespondError(err)
	}

	buf, err := report.BuildLedgerWorkbook(statement)
	if err != nil {
		return c.RespondError(err)
	}

	filename := fmt.Sprintf("payroll_%d_%s.xlsx", statement.EmployeeID, statement.Cycle.End.Format("2006-01"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	return nil
}

// Payslip serves the ledger as a PDF payslip.
func (uc Controller) Payslip(c *web.Context) error {
	statement, err := uc.statement(c)
	if err != nil {
		return c.RespondError(err)
	}

	buf, err := report.BuildPayslip(statement)
	if err != nil {
		return c.RespondError(err)
	}

	filename := fmt.Sprintf("payslip_%d_%s.pdf", statement.EmployeeID, statement.Cycle.End.Format("2006-01"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	return nil
}
