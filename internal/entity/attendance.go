package entity

import (
	"github.com/uptrace/bun"
)

type Attendance struct {
	bun.BaseModel `bun:"table:attendance"`

	BasicEntity
	EmployeeID *int     `json:"employee_id" bun:"employee_id"`
	WorkDay    string   `json:"work_day"    bun:"work_day"`
	ComeTime   string   `json:"come_time"   bun:"come_time"`
	Status     *string  `json:"status"      bun:"status"`
	Photo      *string  `json:"photo,omitempty"     bun:"photo"`
	Latitude   *float64 `json:"latitude,omitempty"  bun:"latitude"`
	Longitude  *float64 `json:"longitude,omitempty" bun:"longitude"`
	Address    *string  `json:"address,omitempty"   bun:"address"`
}
