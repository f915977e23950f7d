package attendance

import (
	"context"

	"staffportal/backend/internal/repository/postgres/attendance"

	"github.com/Azure/go-autorest/autorest/date"
)

type Attendance interface {
	CreatePunch(ctx context.Context, request attendance.PunchRequest) (attendance.PunchResponse, error)
	GetList(ctx context.Context, filter attendance.Filter) ([]attendance.GetListResponse, int, error)
	GetRange(ctx context.Context, employeeID int, from, to date.Date) ([]attendance.DayRecord, error)
	Delete(ctx context.Context, id int) error
}

type Geocoder interface {
	Resolve(ctx context.Context, latitude, longitude float64) string
}
