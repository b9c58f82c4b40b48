package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"datesieve/internal/platform/net/middleware"
)

// StackOptions tunes the common stack; the zero value is usable
type StackOptions struct {
	// CORSOrigins are the allowed origins, empty allows none
	CORSOrigins []string
	// Timeout cancels request contexts, 0 means 30s
	Timeout time.Duration
	// Slow marks access log lines at warn level
	Slow time.Duration
	// Throttle caps in flight requests, 0 disables it
	Throttle int
	// Quiet paths are left out of the access log, eg probes
	Quiet []string
}

// CommonStack returns a baseline per module middleware slice with defaults
func CommonStack() []func(http.Handler) http.Handler { return CommonStackWith(StackOptions{}) }

// CommonStackWith returns the baseline stack configured by o
// The request scope must exist before the access log and the recoverer read it
func CommonStackWith(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	stack := []func(http.Handler) http.Handler{
		middleware.RealIP(),
		middleware.RequestID(),
		middleware.RequestScope,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow, Skip: o.Quiet}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	}
	if o.Throttle > 0 {
		stack = append(stack, middleware.Throttle(o.Throttle))
	}
	return stack
}
