package attendance

import (
	"net/http"
	"reflect"
	"time"

	"staffportal/backend/foundation/web"
	"staffportal/backend/internal/repository/postgres/attendance"
	"staffportal/backend/internal/service"
	"staffportal/backend/internal/service/geocode"
	"staffportal/backend/internal/service/payroll"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type Controller struct {
	attendance Attendance
	geocoder   Geocoder
	policy     payroll.Policy
}

func NewController(attendanceRepo Attendance, geocoder Geocoder, policy payroll.Policy) *Controller {
	return &Controller{attendance: attendanceRepo, geocoder: geocoder, policy: policy}
}

// Punch records the single daily presence event for an employee.
func (uc Controller) Punch(c *web.Context) error {
	var request attendance.PunchRequest
	if err := c.BindFunc(&request, "EmployeeID"); err != nil {
		return c.RespondError(err)
	}

	request.Status = uc.policy.Classify(time.Now())

	if request.Latitude != nil && request.Longitude != nil {
		address := uc.geocoder.Resolve(c.Ctx, *request.Latitude, *request.Longitude)
		if address == geocode.Unavailable && uc.policy.RequireLocation {
			return c.RespondError(web.NewRequestError(errors.New("location could not be resolved"), http.StatusBadRequest))
		}
		request.Address = &address
	} else if uc.policy.RequireLocation {
		return c.RespondError(web.NewRequestError(errors.New("latitude and longitude are required"), http.StatusBadRequest))
	}

	if file, err := c.FormFile("photo"); err == nil {
		path, err := service.Upload(file, "punches")
		if err != nil {
			return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
		}
		// The admin list shows a small preview; keep serving the original if
		// scaling fails.
		if thumb, err := service.Thumbnail(path); err == nil {
			path = thumb
		}
		request.Photo = &path
	}

	response, err := uc.attendance.CreatePunch(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetList(c *web.Context) error {
	var filter attendance.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if day, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = day
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.attendance.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

// GetHistory lists one employee's records over a date range.
func (uc Controller) GetHistory(c *web.Context) error {
	employeeID, ok := c.GetQueryFunc(reflect.Int, "employee_id").(*int)
	if !ok || employeeID == nil {
		return c.RespondError(web.NewRequestError(errors.New("employee_id parameter is required"), http.StatusBadRequest))
	}

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return c.RespondError(web.NewRequestError(errors.New("from and to parameters are required"), http.StatusBadRequest))
	}

	from, err := date.ParseDate(fromStr)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid from date"), http.StatusBadRequest))
	}
	to, err := date.ParseDate(toStr)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid to date"), http.StatusBadRequest))
	}

	list, err := uc.attendance.GetRange(c.Ctx, *employeeID, from, to)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := uc.attendance.Delete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
