package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"staffportal/backend/foundation/web"
	"staffportal/backend/internal/auth"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

// Database wraps bun so repositories can embed one type and get both the
// query builder and the raw database/sql surface.
type Database struct {
	*bun.DB
}

type Config struct {
	Username   string
	Password   string
	Host       string
	Port       string
	Name       string
	DisableTLS bool
}

func NewDatabase(cfg Config) *Database {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	if cfg.DisableTLS {
		dsn += "?sslmode=disable"
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(false)))

	return &Database{DB: db}
}

// CheckClaims pulls the authenticated claims out of the context. When roles
// are given the caller must hold one of them.
func (d Database) CheckClaims(ctx context.Context, roles ...string) (auth.Claims, error) {
	claims, ok := ctx.Value(auth.Key).(auth.Claims)
	if !ok {
		return auth.Claims{}, web.NewRequestError(errors.New("missing authentication claims"), http.StatusUnauthorized)
	}

	if len(roles) > 0 && !claims.Authorized(roles...) {
		return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	return claims, nil
}

// ValidateStruct checks that the named fields of the request struct are set.
func (d Database) ValidateStruct(s interface{}, requiredFields ...string) error {
	v := reflect.ValueOf(s)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var missing []string
	for _, field := range requiredFields {
		for _, name := range strings.Split(field, ",") {
			name = strings.TrimSpace(name)
			f := v.FieldByName(name)
			if !f.IsValid() || f.IsZero() {
				missing = append(missing, name)
			}
		}
	}
	if len(missing) > 0 {
		return web.NewRequestError(errors.Errorf("required fields: %s", strings.Join(missing, ", ")), http.StatusBadRequest)
	}

	return nil
}

// DeleteRow soft-deletes one row and stamps who removed it.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	claims, err := d.CheckClaims(ctx)
	if err != nil {
		return err
	}

	q := d.NewUpdate().Table(table).Where("deleted_at IS NULL AND id = ?", id)
	q.Set("deleted_at = ?", time.Now())
	q.Set("deleted_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusInternalServerError)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reading affected rows"), http.StatusInternalServerError)
	}
	if affected == 0 {
		return web.NewRequestError(errors.Errorf("row not found in %s", table), http.StatusNotFound)
	}

	return nil
}
