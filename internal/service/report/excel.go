package report

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"staffportal/backend/internal/service/payroll"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

var sheetNameCleaner = regexp.MustCompile(`[\\/?*\[\]:]`)

// SheetName normalizes an employee name into a legal worksheet name.
func SheetName(name string) string {
	cleaned := sheetNameCleaner.ReplaceAllString(norm.NFKC.String(name), "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		cleaned = "Payroll"
	}
	if len(cleaned) > 31 {
		cleaned = cleaned[:31]
	}
	return cleaned
}

// BuildLedgerWorkbook renders one statement as a downloadable payroll sheet:
// one row per calendar day of the cycle plus a totals footer.
func BuildLedgerWorkbook(statement payroll.Statement) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	sheet := SheetName(statement.FullName)
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Day", "Status", "Credit", "Punch-in", "Location"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, errors.Wrap(err, "writing header")
		}
	}

	rowNum := 2
	for _, entry := range statement.Ledger {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.Day)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.Status)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.Credit)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.ComeTime)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.Address)
		rowNum++
	}

	rowNum++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), "Payable Days")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), statement.PayableDays)
	rowNum++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), "Total Pay")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), statement.TotalPay)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "writing workbook")
	}

	return &buf, nil
}
