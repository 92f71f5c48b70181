package web

import (
	"log"

	"github.com/gin-gonic/gin"
)

type Handler func(c *Context) error

type Middleware func(Handler) Handler

// App is a thin layer over gin that lets handlers return errors and
// middleware compose around the Handler signature.
type App struct {
	*gin.Engine
}

func NewApp() *App {
	return &App{Engine: gin.Default()}
}

func (a *App) handle(method, path string, handler Handler, mw ...Middleware) {
	// Wrap in reverse so the first listed middleware runs first.
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}

	h := handler
	a.Engine.Handle(method, path, func(c *gin.Context) {
		ctx := NewContext(c)
		if err := h(ctx); err != nil {
			log.Printf("%s %s: %v", method, path, err)
		}
	})
}

func (a *App) Get(path string, handler Handler, mw ...Middleware) {
	a.handle("GET", path, handler, mw...)
}

func (a *App) Post(path string, handler Handler, mw ...Middleware) {
	a.handle("POST", path, handler, mw...)
}

func (a *App) Put(path string, handler Handler, mw ...Middleware) {
	a.handle("PUT", path, handler, mw...)
}

func (a *App) Patch(path string, handler Handler, mw ...Middleware) {
	a.handle("PATCH", path, handler, mw...)
}

func (a *App) Delete(path string, handler Handler, mw ...Middleware) {
	a.handle("DELETE", path, handler, mw...)
}
