// Package middleware adapts chi middleware and adds the in house request
// scope, access log and panic recovery
package middleware

import (
	"net/http"
	"slices"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the stdlib middleware shape used across the API
type Middleware = func(http.Handler) http.Handler

// RequestID propagates X-Request-Id or mints one
func RequestID() Middleware { return chimw.RequestID }

// RealIP rewrites RemoteAddr from X-Forwarded-For / X-Real-IP
func RealIP() Middleware { return chimw.RealIP }

// NoCache marks every response as uncacheable; date answers depend on the request
func NoCache() Middleware { return chimw.NoCache }

// Compress gzips/deflates responses at level
func Compress(level int) Middleware {
	c := chimw.NewCompressor(level, "application/json", "text/plain")
	return c.Handler
}

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

func StripSlashes() Middleware { return chimw.StripSlashes }

// Timeout cancels the request context after d; scans observe it between segments
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Throttle caps in flight requests; excess requests get 429
func Throttle(limit int) Middleware { return chimw.Throttle(limit) }

// CORSOptions is the subset of go-chi/cors the API exposes
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsHeaders = []string{"Accept", "Content-Type", "X-Request-ID"}
)

// CORS wraps go-chi/cors; empty method and header lists take the API defaults
func CORS(o CORSOptions) Middleware {
	methods, headers := o.AllowedMethods, o.AllowedHeaders
	if len(methods) == 0 {
		methods = slices.Clone(corsMethods)
	}
	if len(headers) == 0 {
		headers = slices.Clone(corsHeaders)
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   methods,
		AllowedHeaders:   headers,
		ExposedHeaders:   o.ExposedHeaders,
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}
