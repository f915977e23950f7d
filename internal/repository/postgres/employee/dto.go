package employee

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID          int      `json:"id"`
	FullName    *string  `json:"full_name"`
	Designation *string  `json:"designation"`
	Salary      *float64 `json:"salary"`
	Phone       *string  `json:"phone"`
	Photo       *string  `json:"photo"`
}

type CreateRequest struct {
	FullName    *string  `json:"full_name" form:"full_name"`
	Designation *string  `json:"designation" form:"designation"`
	Salary      *float64 `json:"salary" form:"salary"`
	Pin         *string  `json:"pin" form:"pin"`
	Phone       *string  `json:"phone" form:"phone"`
	Photo       *string  `json:"-" form:"-"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:employees"`

	ID          int       `json:"id" bun:"-"`
	FullName    *string   `json:"full_name" bun:"full_name"`
	Designation *string   `json:"designation" bun:"designation"`
	Salary      *float64  `json:"salary" bun:"salary"`
	Pin         *string   `json:"-" bun:"pin"`
	Phone       *string   `json:"phone" bun:"phone"`
	Photo       *string   `json:"photo,omitempty" bun:"photo"`
	CreatedAt   time.Time `json:"-" bun:"created_at"`
	CreatedBy   int       `json:"-" bun:"created_by"`
}

type UpdateRequest struct {
	ID          int      `json:"id" form:"id"`
	Designation *string  `json:"designation" form:"designation"`
	Salary      *float64 `json:"salary" form:"salary"`
	Pin         *string  `json:"pin" form:"pin"`
	Phone       *string  `json:"phone" form:"phone"`
}

type SignInRequest struct {
	EmployeeID int    `json:"employee_id" form:"employee_id"`
	Pin        string `json:"pin" form:"pin"`
}
