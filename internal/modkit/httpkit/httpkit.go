// Package httpkit is what modules mount their routes with.
// Handlers return (value, error); the envelope and status mapping live below
package httpkit

import (
	"net/http"
	"path"

	phttp "datesieve/internal/platform/net/http"
)

type (
	Response = phttp.Response
	Router   = phttp.Router
)

// Get mounts a query-only endpoint
func Get(r Router, p string, h func(*http.Request) (any, error)) {
	r.Get(p, phttp.CallHandler(h))
}

// PostJSON mounts an endpoint whose body binds to T; a bind or validation
// failure answers 400 before h runs
func PostJSON[T any](r Router, p string, h func(*http.Request, T) (any, error)) {
	r.Post(p, phttp.JSONHandler(h))
}

// MountAPI groups mount under /api/<version> behind mw
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(), func(api httpkit.Router) {
//	  dates.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(path.Join("/api", version), func(api Router) {
		api.Use(mw...)
		mount(api)
	})
}

func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
