package auth

import (
	"context"

	"staffportal/backend/internal/entity"
	"staffportal/backend/internal/repository/postgres/employee"
)

type AdminConfig interface {
	VerifyPassword(ctx context.Context, password string) (entity.AdminConfig, error)
	UpdatePassword(ctx context.Context, newPassword string) error
}

type Employee interface {
	VerifyPin(ctx context.Context, request employee.SignInRequest) (entity.Employee, error)
}

type Otp interface {
	Issue(ctx context.Context, destination, reason string) (bool, error)
	Verify(ctx context.Context, destination, code string) (bool, error)
}
