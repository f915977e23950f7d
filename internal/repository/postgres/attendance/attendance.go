package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"staffportal/backend/foundation/web"
	"staffportal/backend/internal/pkg/repository/postgresql"
	"staffportal/backend/internal/repository/postgres"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// CreatePunch records the single daily presence event. The unique
// (employee_id, work_day) constraint makes the losing writer's insert a no-op,
// which is surfaced as ErrAlreadyMarked.
func (r Repository) CreatePunch(ctx context.Context, request PunchRequest) (PunchResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return PunchResponse{}, err
	}

	if err := r.ValidateStruct(&request, "EmployeeID", "Status"); err != nil {
		return PunchResponse{}, err
	}

	var response PunchResponse

	response.EmployeeID = request.EmployeeID
	response.WorkDay = time.Now().Format("2006-01-02")
	response.ComeTime = time.Now().Format("15:04:05")
	response.Status = request.Status
	response.Latitude = request.Latitude
	response.Longitude = request.Longitude
	response.Address = request.Address
	response.Photo = request.Photo
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	result, err := r.NewInsert().
		Model(&response).
		On("CONFLICT (employee_id, work_day) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return PunchResponse{}, web.NewRequestError(errors.Wrap(err, "creating punch"), http.StatusInternalServerError)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return PunchResponse{}, web.NewRequestError(errors.Wrap(err, "reading punch result"), http.StatusInternalServerError)
	}
	if affected == 0 {
		return PunchResponse{}, web.NewRequestError(postgres.ErrAlreadyMarked, http.StatusBadRequest)
	}

	return response, nil
}

// GetRange returns the sparse day records for one employee inside [from, to].
// A query failure is reported as an error so callers can tell a broken store
// apart from a genuinely empty result set.
func (r Repository) GetRange(ctx context.Context, employeeID int, from, to date.Date) ([]DayRecord, error) {
	query := `
		SELECT
			a.work_day,
			a.status,
			a.come_time,
			COALESCE(a.address, '')
		FROM attendance a
		WHERE
			a.deleted_at IS NULL
			AND a.employee_id = $1
			AND a.work_day BETWEEN $2 AND $3
		ORDER BY a.work_day
	`

	rows, err := r.QueryContext(ctx, query, employeeID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting attendance range"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []DayRecord

	for rows.Next() {
		var detail DayRecord
		var workDayString string
		var comeTimeBytes []byte

		if err = rows.Scan(&workDayString, &detail.Status, &comeTimeBytes, &detail.Address); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning attendance range"), http.StatusInternalServerError)
		}

		workDay, err := date.ParseDate(workDayString)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting work_day to date.Date"), http.StatusInternalServerError)
		}
		detail.WorkDay = workDay

		comeTime, err := time.Parse("15:04:05", string(comeTimeBytes))
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "converting come_time to time.Time"), http.StatusInternalServerError)
		}
		detail.ComeTime = comeTime.Format("15:04")

		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading attendance range"), http.StatusInternalServerError)
	}

	return list, nil
}

// GetList is the live attendance view for one work day (today by default).
func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	day := time.Now().Format("2006-01-02")
	if filter.Date != nil {
		parsed, err := time.Parse("2006-01-02", *filter.Date)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
		}
		day = parsed.Format("2006-01-02")
	}

	whereQuery := `WHERE a.deleted_at IS NULL AND a.work_day = $1`
	args := []interface{}{day}

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
			a.id,
			a.employee_id,
			e.full_name,
			a.work_day,
			a.come_time,
			a.status,
			a.address
		FROM attendance a
		LEFT JOIN employees e ON a.employee_id = e.id
		` + whereQuery + `
		ORDER BY a.come_time DESC`

	countQuery := `
		SELECT count(a.id)
		FROM attendance a
		LEFT JOIN employees e ON a.employee_id = e.id
		` + whereQuery
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
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		var workDayString string
		var comeTimeBytes []byte

		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.FullName,
			&workDayString,
			&comeTimeBytes,
			&detail.Status,
			&detail.Address); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning attendance list"), http.StatusInternalServerError)
		}

		workDay, err := date.ParseDate(workDayString)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting work_day to date.Date"), http.StatusInternalServerError)
		}
		detail.WorkDay = &workDay

		comeTime, err := time.Parse("15:04:05", string(comeTimeBytes))
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting come_time to time.Time"), http.StatusInternalServerError)
		}
		detail.ComeTime = &comeTime

		list = append(list, detail)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "reading attendance list"), http.StatusInternalServerError)
	}

	count := 0
	if err = r.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting attendance"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "attendance", id)
}
