package report

import (
	"bytes"
	"fmt"

	"staffportal/backend/internal/service/payroll"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/pkg/errors"
)

// BuildPayslip renders one statement as a simple tabular payslip PDF.
func BuildPayslip(statement payroll.Statement) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Payslip")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Employee: %s", statement.FullName))
	pdf.Ln(5)
	if statement.Designation != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Designation: %s", statement.Designation))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Cycle: %s - %s",
		statement.Cycle.Start.Format("2006-01-02"),
		statement.Cycle.End.Format("2006-01-02")))
	pdf.Ln(8)

	widths := []float64{28, 26, 28, 18, 22, 68}
	headers := []string{"Date", "Day", "Status", "Credit", "Punch-in", "Location"}

	pdf.SetFont("Arial", "B", 9)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 6, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, entry := range statement.Ledger {
		pdf.CellFormat(widths[0], 5, entry.Date.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 5, entry.Day, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 5, entry.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 5, fmt.Sprintf("%.1f", entry.Credit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 5, entry.ComeTime, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 5, entry.Address, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Payable days: %.1f", statement.PayableDays))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total pay: %.2f", statement.TotalPay))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "writing payslip")
	}

	return &buf, nil
}
