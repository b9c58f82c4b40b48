package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	perr "datesieve/internal/platform/errors"
)

// Handler is the platform handler type used everywhere
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the surface modules mount against; chi stays behind it
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}

// chiRouter adapts a chi router; Mux always returns the root
type chiRouter struct {
	root *chi.Mux
	r    chi.Router
}

// AdaptChi adapts m to a Router. Unknown paths and methods answer with the
// JSON envelope instead of chi's plain text
func AdaptChi(m *chi.Mux) Router {
	m.NotFound(Handle(func(r *http.Request) Response {
		return Error(perr.Newf(perr.ErrorCodeNotFound, "no route for %s", r.URL.Path))
	}))
	m.MethodNotAllowed(Handle(func(r *http.Request) Response {
		return Response{Status: http.StatusMethodNotAllowed, Body: perr.Newf(perr.ErrorCodeNotFound, "%s not allowed on %s", r.Method, r.URL.Path)}
	}))
	return chiRouter{root: m, r: m}
}

func (c chiRouter) Get(p string, h Handler)  { c.r.Method(http.MethodGet, p, http.HandlerFunc(h)) }
func (c chiRouter) Post(p string, h Handler) { c.r.Method(http.MethodPost, p, http.HandlerFunc(h)) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{root: c.root, r: sub}) })
}

func (c chiRouter) Mux() http.Handler { return c.root }
