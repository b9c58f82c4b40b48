package middleware

import (
	"fmt"
	"net/http"

	perr "datesieve/internal/platform/errors"
	"datesieve/internal/platform/logger"
	pnet "datesieve/internal/platform/net"
	phttp "datesieve/internal/platform/net/http"

	"github.com/pkg/errors"
)

// RecoverJSON turns a panic into the standard 500 envelope with code panic
// The panic value and its stack are logged, never sent to the client
// http.ErrAbortHandler is re-raised so net/http can abort the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}

			reqID := pnet.RequestID(r.Context())
			cause, ok := v.(error)
			if !ok {
				cause = fmt.Errorf("%v", v)
			}
			logger.C(r.Context()).Error().
				Stack().
				Err(errors.WithStack(cause)).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			err := perr.PanicErrf("panic recovered")
			phttp.JSON(w, http.StatusInternalServerError, phttp.Envelope{
				StatusCode: http.StatusInternalServerError,
				Status:     http.StatusText(http.StatusInternalServerError),
				Code:       perr.CodeOf(err),
				Error:      err.Error(),
				RequestID:  reqID,
			})
		}()
		next.ServeHTTP(w, r)
	})
}
