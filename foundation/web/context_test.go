package web

import (
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, method, target, body string) *Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req

	return &Context{Context: c, Ctx: req.Context()}
}

func TestBindFuncRequiredFields(t *testing.T) {
	type request struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	c := testContext(t, "POST", "/", `{"name":"asha"}`)

	var req request
	if err := c.BindFunc(&req, "Name"); err != nil {
		t.Fatalf("expected bind to succeed: %v", err)
	}

	c = testContext(t, "POST", "/", `{"age":3}`)
	var incomplete request
	if err := c.BindFunc(&incomplete, "Name"); err == nil {
		t.Fatalf("expected missing required field error")
	}
}

func TestGetQueryFunc(t *testing.T) {
	c := testContext(t, "GET", "/?limit=25&active=true&search=rao", "")

	limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int)
	if !ok || limit == nil || *limit != 25 {
		t.Fatalf("expected limit 25, got %v", limit)
	}

	active, ok := c.GetQueryFunc(reflect.Bool, "active").(*bool)
	if !ok || active == nil || !*active {
		t.Fatalf("expected active true, got %v", active)
	}

	search, ok := c.GetQueryFunc(reflect.String, "search").(*string)
	if !ok || search == nil || *search != "rao" {
		t.Fatalf("expected search rao, got %v", search)
	}

	missing, ok := c.GetQueryFunc(reflect.Int, "page").(*int)
	if !ok || missing != nil {
		t.Fatalf("expected typed nil for absent param")
	}

	if err := c.ValidQuery(); err != nil {
		t.Fatalf("expected no query errors: %v", err)
	}
}

func TestGetQueryFuncReportsBadValues(t *testing.T) {
	c := testContext(t, "GET", "/?limit=abc", "")

	if v, _ := c.GetQueryFunc(reflect.Int, "limit").(*int); v != nil {
		t.Fatalf("expected nil for unparseable int")
	}
	if err := c.ValidQuery(); err == nil {
		t.Fatalf("expected ValidQuery to report the bad value")
	}
}
