package middleware

import (
	"net"
	"net/http"

	"datesieve/internal/platform/logger"
	pnet "datesieve/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestScope copies the chi request id and the caller address onto the
// context so logger.C and pnet getters see them, and echoes the id in the
// X-Request-ID response header. Mount after RequestID and RealIP
func RequestScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := chimw.GetReqID(r.Context())
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
		if reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		ctx := pnet.WithRequest(r.Context(), reqID, ip)
		ctx = logger.WithRequest(ctx, reqID, ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
