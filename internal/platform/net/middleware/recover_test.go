package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"datesieve/internal/platform/net/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverJSON_WritesPanicEnvelope(t *testing.T) {
	sink.drain(t)
	h := middleware.RequestID()(middleware.RequestScope(middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("catalog exploded")
	}))))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dates/find", nil)
	req.Header.Set("X-Request-Id", "rid-7")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "rid-7", rr.Header().Get("X-Request-ID"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "panic", body["code"])
	assert.Equal(t, "panic recovered", body["error"])
	assert.Equal(t, "rid-7", body["request_id"])
	assert.NotContains(t, rr.Body.String(), "catalog exploded")

	lines := sink.drain(t)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, "catalog exploded", lines[0]["error"])
	assert.Equal(t, "rid-7", lines[0]["request_id"])
	assert.NotNil(t, lines[0]["stack"])
}

func TestRecoverJSON_ReraisesAbort(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRecoverJSON_PassesThrough(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := serve(h, http.MethodGet, "/")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
