package adminconfig

import (
	"context"
	"net/http"
	"time"

	"staffportal/backend/foundation/web"
	"staffportal/backend/internal/entity"
	"staffportal/backend/internal/pkg/repository/postgresql"
	"staffportal/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// Get returns the singleton admin credential row.
func (r Repository) Get(ctx context.Context) (entity.AdminConfig, error) {
	var detail entity.AdminConfig

	err := r.NewSelect().
		Model(&detail).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return entity.AdminConfig{}, &web.Error{
			Err:    errors.New("admin configuration not found"),
			Status: http.StatusInternalServerError,
		}
	}

	return detail, nil
}

// VerifyPassword checks the shared admin secret.
func (r Repository) VerifyPassword(ctx context.Context, password string) (entity.AdminConfig, error) {
	detail, err := r.Get(ctx)
	if err != nil {
		return entity.AdminConfig{}, err
	}

	if detail.Password == nil {
		return entity.AdminConfig{}, web.NewRequestError(postgres.ErrWrongCredential, http.StatusUnauthorized)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(password)); err != nil {
		return entity.AdminConfig{}, web.NewRequestError(postgres.ErrWrongCredential, http.StatusUnauthorized)
	}

	return detail, nil
}

// UpdatePassword replaces the admin secret. Callers run the OTP check first.
func (r Repository) UpdatePassword(ctx context.Context, newPassword string) error {
	detail, err := r.Get(ctx)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "hashing admin password"), http.StatusInternalServerError)
	}

	q := r.NewUpdate().Table("admin_config").Where("id = ?", detail.ID)
	q.Set("password = ?", string(hash))
	q.Set("updated_at = ?", time.Now())

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating admin password"), http.StatusInternalServerError)
	}

	return nil
}
