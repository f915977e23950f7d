package service

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// BadgePNG encodes an employee badge QR. Scanning it pre-fills the employee
// id on the punch-in screen.
func BadgePNG(employeeID int, baseURL string) ([]byte, error) {
	content := fmt.Sprintf("%s/punch?employee_id=%d", baseURL, employeeID)
	return qrcode.Encode(content, qrcode.Medium, 256)
}
