package attendance

import (
	"encoding/json"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
	Date   *string
}

type GetListResponse struct {
	ID         int        `json:"id"`
	EmployeeID *int       `json:"employee_id"`
	FullName   *string    `json:"full_name"`
	WorkDay    *date.Date `json:"work_day"`
	ComeTime   *time.Time `json:"come_time,omitempty"`
	Status     *string    `json:"status"`
	Address    *string    `json:"address,omitempty"`
}

func (r *GetListResponse) MarshalJSON() ([]byte, error) {
	type Alias GetListResponse
	aux := &struct {
		ComeTime string `json:"come_time,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(r),
	}

	if r.ComeTime != nil {
		aux.ComeTime = r.ComeTime.Format("15:04")
	}

	return json.Marshal(aux)
}

// DayRecord is the minimal per-day view the payroll engine reconciles against.
type DayRecord struct {
	WorkDay  date.Date `json:"work_day"`
	Status   string    `json:"status"`
	ComeTime string    `json:"come_time"`
	Address  string    `json:"address,omitempty"`
}

type PunchRequest struct {
	EmployeeID int      `json:"employee_id" form:"employee_id"`
	Status     string   `json:"-" form:"-"`
	Latitude   *float64 `json:"latitude" form:"latitude"`
	Longitude  *float64 `json:"longitude" form:"longitude"`
	Address    *string  `json:"-" form:"-"`
	Photo      *string  `json:"-" form:"-"`
}

type PunchResponse struct {
	bun.BaseModel `bun:"table:attendance"`

	ID         int       `json:"id" bun:"-"`
	EmployeeID int       `json:"employee_id" bun:"employee_id"`
	WorkDay    string    `json:"work_day" bun:"work_day"`
	ComeTime   string    `json:"come_time" bun:"come_time"`
	Status     string    `json:"status" bun:"status"`
	Photo      *string   `json:"photo,omitempty" bun:"photo"`
	Latitude   *float64  `json:"latitude,omitempty" bun:"latitude"`
	Longitude  *float64  `json:"longitude,omitempty" bun:"longitude"`
	Address    *string   `json:"address,omitempty" bun:"address"`
	CreatedAt  time.Time `json:"-" bun:"created_at"`
	CreatedBy  int       `json:"-" bun:"created_by"`
}
