package employee

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"staffportal/backend/foundation/web"
	"staffportal/backend/internal/auth"
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

func (r Repository) GetById(ctx context.Context, id int) (entity.Employee, error) {
	var detail entity.Employee

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Employee{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Employee{}, web.NewRequestError(errors.Wrap(err, "selecting employee"), http.StatusInternalServerError)
	}

	return detail, nil
}

// VerifyPin checks an employee's PIN for sign-in.
func (r Repository) VerifyPin(ctx context.Context, request SignInRequest) (entity.Employee, error) {
	var detail entity.Employee

	err := r.NewSelect().Model(&detail).Where("id = ? AND deleted_at IS NULL", request.EmployeeID).Scan(ctx)
	if err != nil {
		return entity.Employee{}, &web.Error{
			Err:    errors.New("employee not found"),
			Status: http.StatusUnauthorized,
		}
	}

	if detail.Pin == nil {
		return entity.Employee{}, web.NewRequestError(postgres.ErrWrongCredential, http.StatusUnauthorized)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Pin), []byte(request.Pin)); err != nil {
		return entity.Employee{}, web.NewRequestError(postgres.ErrWrongCredential, http.StatusUnauthorized)
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE e.deleted_at IS NULL`
	var args []interface{}

	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		whereQuery += fmt.Sprintf(` AND e.full_name ILIKE $%d`, len(args))
	}

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}

	query := `
		SELECT
			e.id,
			e.full_name,
			e.designation,
			e.salary,
			e.phone,
			e.photo
		FROM employees e
		` + whereQuery + `
		ORDER BY e.created_at DESC`

	countQuery := `SELECT count(e.id) FROM employees e ` + whereQuery
	countArgs := make([]interface{}, len(args))
	copy(countArgs, args)

	if filter.Limit != nil {
		args = append(args, *filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if filter.Offset != nil {
		args = append(args, *filter.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting employees"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.FullName,
			&detail.Designation,
			&detail.Salary,
			&detail.Phone,
			&detail.Photo); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning employee list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "reading employee list"), http.StatusInternalServerError)
	}

	count := 0
	if err = r.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting employees"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "FullName", "Salary", "Pin"); err != nil {
		return CreateResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Pin), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing pin"), http.StatusInternalServerError)
	}
	hashStr := string(hash)

	var response CreateResponse

	response.FullName = request.FullName
	response.Designation = request.Designation
	response.Salary = request.Salary
	response.Pin = &hashStr
	response.Phone = request.Phone
	response.Photo = request.Photo
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating employee"), http.StatusBadRequest)
	}

	return response, nil
}

// UpdateColumns mutates only PIN, salary, designation or phone.
func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	q := r.NewUpdate().Table("employees").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Pin != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Pin), bcrypt.DefaultCost)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "hashing pin"), http.StatusInternalServerError)
		}
		q.Set("pin = ?", string(hash))
	}
	if request.Salary != nil {
		q.Set("salary = ?", *request.Salary)
	}
	if request.Designation != nil {
		q.Set("designation = ?", *request.Designation)
	}
	if request.Phone != nil {
		q.Set("phone = ?", *request.Phone)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating employee"), http.StatusBadRequest)
	}

	return nil
}

// Delete removes the employee's attendance rows first; the schema carries no
// cascade on purpose.
func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}

	if _, err := r.NewDelete().Table("attendance").Where("employee_id = ?", id).Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "deleting employee attendance"), http.StatusInternalServerError)
	}

	return r.DeleteRow(ctx, "employees", id)
}
