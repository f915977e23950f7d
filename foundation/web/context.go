package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context wraps gin's context and keeps the request context handy for
// repositories that only want a context.Context.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrs []string
	queryErrs []string
}

// BindFunc binds the JSON (or form) body into obj and checks that the named
// struct fields ended up non-zero.
func (c *Context) BindFunc(obj interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(obj); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request body"), http.StatusBadRequest)
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var missing []string
	for _, field := range requiredFields {
		// Callers sometimes pass "A,B" as a single argument.
		for _, name := range strings.Split(field, ",") {
			name = strings.TrimSpace(name)
			f := v.FieldByName(name)
			if !f.IsValid() || f.IsZero() {
				missing = append(missing, name)
			}
		}
	}
	if len(missing) > 0 {
		return NewRequestError(errors.Errorf("required fields: %s", strings.Join(missing, ", ")), http.StatusBadRequest)
	}

	return nil
}

// GetParam parses a path parameter into the requested kind. Parse failures are
// collected and reported by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		i, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, name)
			return 0
		}
		return i
	default:
		if value == "" {
			c.paramErrs = append(c.paramErrs, name)
		}
		return value
	}
}

func (c *Context) ValidParam() error {
	if len(c.paramErrs) > 0 {
		return NewRequestError(errors.Errorf("invalid path params: %s", strings.Join(c.paramErrs, ", ")), http.StatusBadRequest)
	}
	return nil
}

// GetQueryFunc parses an optional query parameter and returns a typed pointer,
// or a nil pointer of that type when the parameter is absent.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok {
			return (*int)(nil)
		}
		i, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, name)
			return (*int)(nil)
		}
		return &i
	case reflect.Bool:
		if !ok {
			return (*bool)(nil)
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, name)
			return (*bool)(nil)
		}
		return &b
	default:
		if !ok {
			return (*string)(nil)
		}
		return &value
	}
}

func (c *Context) ValidQuery() error {
	if len(c.queryErrs) > 0 {
		return NewRequestError(errors.Errorf("invalid query params: %s", strings.Join(c.queryErrs, ", ")), http.StatusBadRequest)
	}
	return nil
}

// Respond writes the JSON response.
func (c *Context) Respond(data map[string]interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError converts err into a JSON failure response. Unrecognized errors
// are reported as internal errors without leaking details.
func (c *Context) RespondError(err error) error {
	var webErr *Error
	if errors.As(err, &webErr) {
		c.JSON(webErr.Status, map[string]interface{}{
			"error":  webErr.Err.Error(),
			"status": false,
		})
		return nil
	}

	c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":  fmt.Sprintf("internal error: %v", err),
		"status": false,
	})
	return nil
}
