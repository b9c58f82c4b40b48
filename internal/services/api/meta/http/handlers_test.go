package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datesieve/internal/core/datescan"
	phttp "datesieve/internal/platform/net/http"
)

func get(t *testing.T, d Deps, path string, out any) int {
	t.Helper()
	root := phttp.AdaptChi(chi.NewRouter())
	root.Route("/meta", func(r phttp.Router) { Register(r, d) })

	rec := httptest.NewRecorder()
	root.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
	return rec.Code
}

func TestHealthAndService(t *testing.T) {
	d := Deps{ServiceName: "datesieve-test", StartedAt: time.Now().Add(-time.Minute)}

	var h HealthResponse
	require.Equal(t, http.StatusOK, get(t, d, "/meta/health", &h))
	assert.True(t, h.OK)
	assert.Equal(t, "datesieve-test", h.Service)

	var s ServiceResponse
	require.Equal(t, http.StatusOK, get(t, d, "/meta/service", &s))
	assert.GreaterOrEqual(t, s.Uptime, int64(59))
}

func TestReady(t *testing.T) {
	var r ReadyResponse
	get(t, Deps{Engine: datescan.New(nil)}, "/meta/ready", &r)
	assert.Equal(t, "ok", r.Status)
	require.Len(t, r.Checks, 2)
	for _, c := range r.Checks {
		assert.Equal(t, "ok", c.Status, c.Name)
	}

	get(t, Deps{}, "/meta/ready", &r)
	assert.Equal(t, "degraded", r.Status)
	assert.Equal(t, "skipped", r.Checks[0].Status)
}

func TestEngineAndVersion(t *testing.T) {
	engine := datescan.New(nil)
	d := Deps{ServiceName: "datesieve-test", Engine: engine}

	var e EngineResponse
	get(t, d, "/meta/engine", &e)
	assert.Equal(t, engine.Catalog().Len(), e.Formats)
	assert.Equal(t, 1, e.Ranks["context"])
	assert.Positive(t, e.Ranks["stamp"])
	assert.Equal(t, "datesieve-test", e.Build.Service)

	var v struct {
		Service string `json:"service"`
		Formats int    `json:"formats"`
	}
	get(t, d, "/meta/version", &v)
	assert.Equal(t, "datesieve-test", v.Service)
	assert.Equal(t, engine.Catalog().Len(), v.Formats)
}
