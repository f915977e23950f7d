package employee

import (
	"context"

	"staffportal/backend/internal/entity"
	"staffportal/backend/internal/repository/postgres/employee"
)

type Employee interface {
	GetList(ctx context.Context, filter employee.Filter) ([]employee.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (entity.Employee, error)
	Create(ctx context.Context, request employee.CreateRequest) (employee.CreateResponse, error)
	UpdateColumns(ctx context.Context, request employee.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
