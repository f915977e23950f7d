package entity

import (
	"github.com/uptrace/bun"
)

type Employee struct {
	bun.BaseModel `bun:"table:employees"`

	BasicEntity
	FullName    *string  `json:"full_name"   bun:"full_name"`
	Designation *string  `json:"designation" bun:"designation"`
	Salary      *float64 `json:"salary"      bun:"salary"`
	Pin         *string  `json:"-"           bun:"pin"`
	Phone       *string  `json:"phone"       bun:"phone"`
	Photo       *string  `json:"photo"       bun:"photo"`
}
