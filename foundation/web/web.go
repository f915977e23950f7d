package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler is the signature every controller method implements.
type Handler func(c *Context) error

// Middleware wraps a Handler with extra behaviour (auth, logging, ...).
type Middleware func(Handler) Handler

// App is a thin shell around gin that routes to Handler functions.
type App struct {
	*gin.Engine
}

func NewApp() *App {
	return &App{gin.Default()}
}

func (a *App) handle(method, path string, handler Handler, middlewares ...Middleware) {
	// Middlewares wrap outermost-first, same order they are listed.
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	a.Handle(method, path, func(c *gin.Context) {
		ctx := &Context{Context: c, Ctx: c.Request.Context()}
		if err := handler(ctx); err != nil {
			log.Printf("%s %s: unhandled handler error: %v", method, path, err)
		}
	})
}

func (a *App) Get(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodGet, path, handler, middlewares...)
}

func (a *App) Post(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPost, path, handler, middlewares...)
}

func (a *App) Put(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPut, path, handler, middlewares...)
}

func (a *App) Patch(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPatch, path, handler, middlewares...)
}

func (a *App) Delete(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodDelete, path, handler, middlewares...)
}
