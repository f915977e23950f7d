package report

import (
	"testing"
	"time"

	"staffportal/backend/internal/service/payroll"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/xuri/excelize/v2"
)

func sampleStatement() payroll.Statement {
	day := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	return payroll.Statement{
		EmployeeID: 3,
		FullName:   "A. Sharma",
		Salary:     30000,
		Cycle: payroll.Cycle{
			Start: date.Date{Time: day},
			End:   date.Date{Time: day.AddDate(0, 0, 2)},
		},
		Result: payroll.Result{
			TotalPay:    1500,
			PayableDays: 1.5,
			Ledger: []payroll.LedgerEntry{
				{Date: date.Date{Time: day}, Day: "Friday", Status: payroll.StatusPresent, Credit: 1.0, ComeTime: "09:10", Address: "Main Office"},
				{Date: date.Date{Time: day.AddDate(0, 0, 1)}, Day: "Saturday", Status: payroll.StatusHalfDay, Credit: 0.5, ComeTime: "11:05"},
				{Date: date.Date{Time: day.AddDate(0, 0, 2)}, Day: "Sunday", Status: payroll.StatusWeeklyOff, Credit: 0},
			},
		},
	}
}

func TestBuildLedgerWorkbook(t *testing.T) {
	buf, err := BuildLedgerWorkbook(sampleStatement())
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := SheetName("A. Sharma")

	header, err := f.GetCellValue(sheet, "A1")
	if err != nil || header != "Date" {
		t.Fatalf("expected Date header, got %q (err %v)", header, err)
	}
	firstDate, _ := f.GetCellValue(sheet, "A2")
	if firstDate != "2024-01-05" {
		t.Fatalf("expected first row date 2024-01-05, got %q", firstDate)
	}
	status, _ := f.GetCellValue(sheet, "C3")
	if status != payroll.StatusHalfDay {
		t.Fatalf("expected HALF_DAY in second row, got %q", status)
	}
}

func TestSheetName(t *testing.T) {
	if got := SheetName("A/B:C*D?"); got != "ABCD" {
		t.Fatalf("expected illegal characters stripped, got %q", got)
	}
	if got := SheetName("   "); got != "Payroll" {
		t.Fatalf("expected fallback sheet name, got %q", got)
	}
	long := SheetName("abcdefghijklmnopqrstuvwxyzabcdefghijklmnop")
	if len(long) != 31 {
		t.Fatalf("expected 31-char cap, got %d", len(long))
	}
}

func TestBuildPayslip(t *testing.T) {
	buf, err := BuildPayslip(sampleStatement())
	if err != nil {
		t.Fatalf("build payslip: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty PDF output")
	}
	if got := buf.Bytes()[:5]; string(got) != "%PDF-" {
		t.Fatalf("expected PDF magic, got %q", got)
	}
}
