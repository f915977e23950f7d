package employee

import (
	"net/http"
	"reflect"

	"staffportal/backend/foundation/web"
	"staffportal/backend/internal/repository/postgres/employee"
	"staffportal/backend/internal/service"
)

type Controller struct {
	employee Employee
	baseURL  string
}

func NewController(employeeRepo Employee, baseURL string) *Controller {
	return &Controller{employee: employeeRepo, baseURL: baseURL}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter employee.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.employee.GetList(c.Ctx, filter)
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

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.employee.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request employee.CreateRequest
	if err := c.BindFunc(&request, "FullName", "Salary", "Pin"); err != nil {
		return c.RespondError(err)
	}

	if file, err := c.FormFile("photo"); err == nil {
		path, err := service.Upload(file, "employees")
		if err != nil {
			return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
		}
		request.Photo = &path
	}

	response, err := uc.employee.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request employee.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	err := uc.employee.UpdateColumns(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := uc.employee.Delete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// GetQrCode serves the employee's badge QR as a PNG.
func (uc Controller) GetQrCode(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if _, err := uc.employee.GetById(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	png, err := service.BadgePNG(id, uc.baseURL)
	if err != nil {
		return c.RespondError(err)
	}

	c.Data(http.StatusOK, "image/png", png)
	return nil
}
