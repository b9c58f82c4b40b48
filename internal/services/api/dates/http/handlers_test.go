package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datesieve/internal/core/datescan"
	perr "datesieve/internal/platform/errors"
	phttp "datesieve/internal/platform/net/http"
	"datesieve/internal/services/api/dates/domain"
	svc "datesieve/internal/services/api/dates/service"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Code       perr.ErrorCode  `json:"code"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

func newRouter(t *testing.T) stdhttp.Handler {
	t.Helper()
	engine := datescan.New(nil)
	require.NoError(t, RegisterValidators(engine.Catalog()))

	ref := time.Date(2010, 12, 1, 11, 0, 0, 0, time.UTC)
	s := svc.New(engine, svc.Options{Now: func() time.Time { return ref }})

	root := phttp.AdaptChi(chi.NewRouter())
	root.Route("/dates", func(r phttp.Router) { Register(r, s) })
	return root.Mux()
}

func do(t *testing.T, h stdhttp.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestFindHandler(t *testing.T) {
	h := newRouter(t)
	code, env := do(t, h, stdhttp.MethodPost, "/dates/find", `{"text":"Last-Modified: Tue, 02 Jul 2010 19:07:49 GMT"}`)
	require.Equal(t, stdhttp.StatusOK, code)

	var got []domain.Date
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "RFC_1123", got[0].Format)
	assert.Equal(t, "2010-07-02 19:07:49", got[0].Normalized)
	assert.Equal(t, "SECOND", got[0].Exactness)
}

func TestFindHandlerRejectsUnknownFormat(t *testing.T) {
	h := newRouter(t)
	code, env := do(t, h, stdhttp.MethodPost, "/dates/find", `{"text":"2010-07-02","formats":["ISO8601_YMD","NOPE"]}`)
	assert.Equal(t, stdhttp.StatusBadRequest, code)
	assert.Equal(t, perr.ErrorCodeValidation, env.Code)
	assert.Contains(t, env.Error, "formats")
}

func TestBindingErrors(t *testing.T) {
	h := newRouter(t)

	code, env := do(t, h, stdhttp.MethodPost, "/dates/parse", `{"text":""}`)
	assert.Equal(t, stdhttp.StatusBadRequest, code)
	assert.Equal(t, perr.ErrorCodeValidation, env.Code)

	code, env = do(t, h, stdhttp.MethodPost, "/dates/parse", `{"text":"2010","extra":1}`)
	assert.Equal(t, stdhttp.StatusBadRequest, code)
	assert.Equal(t, perr.ErrorCodeJSON, env.Code)

	code, _ = do(t, h, stdhttp.MethodPost, "/dates/diff", `{"a":"2010","b":"2011","unit":"week"}`)
	assert.Equal(t, stdhttp.StatusBadRequest, code)
}

func TestFirstAndParseStatuses(t *testing.T) {
	h := newRouter(t)

	code, env := do(t, h, stdhttp.MethodPost, "/dates/first", `{"text":"no dates at all"}`)
	assert.Equal(t, stdhttp.StatusNotFound, code)
	assert.Equal(t, perr.ErrorCodeNoMatch, env.Code)

	code, env = do(t, h, stdhttp.MethodPost, "/dates/parse", `{"text":"31.02.2010","format":"EU_D_MM_Y"}`)
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, code)
	assert.Equal(t, perr.ErrorCodeNormalization, env.Code)

	code, env = do(t, h, stdhttp.MethodPost, "/dates/parse", `{"text":"2010-07-02T21:07:49+02:00"}`)
	require.Equal(t, stdhttp.StatusOK, code)
	var d domain.Date
	require.NoError(t, json.Unmarshal(env.Data, &d))
	assert.Equal(t, "2010-07-02 19:07:49", d.Normalized)
}

func TestRelativeIntervalDiff(t *testing.T) {
	h := newRouter(t)

	code, env := do(t, h, stdhttp.MethodPost, "/dates/relative", `{"text":"posted 3 days ago"}`)
	require.Equal(t, stdhttp.StatusOK, code)
	var d domain.Date
	require.NoError(t, json.Unmarshal(env.Data, &d))
	assert.Equal(t, "2010-11-28", d.Normalized)

	code, env = do(t, h, stdhttp.MethodPost, "/dates/interval", `{"text":"1 day 2 hours"}`)
	require.Equal(t, stdhttp.StatusOK, code)
	var iv domain.IntervalOutput
	require.NoError(t, json.Unmarshal(env.Data, &iv))
	assert.Equal(t, 93600.0, iv.Seconds)

	code, env = do(t, h, stdhttp.MethodPost, "/dates/diff", `{"a":"2010-07-03","b":"2010-07-01","unit":"day"}`)
	require.Equal(t, stdhttp.StatusOK, code)
	var diff domain.DiffOutput
	require.NoError(t, json.Unmarshal(env.Data, &diff))
	assert.Equal(t, 2.0, diff.Value)
	assert.Equal(t, "DAY", diff.Exactness)
}

func TestBatchHandler(t *testing.T) {
	h := newRouter(t)
	code, env := do(t, h, stdhttp.MethodPost, "/dates/batch",
		`{"documents":[{"id":"a","text":"2010-07-02"},{"text":"nothing"}]}`)
	require.Equal(t, stdhttp.StatusOK, code)

	var got []domain.BatchResult
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Len(t, got[0].Dates, 1)
	assert.NotEmpty(t, got[1].ID)
	assert.Empty(t, got[1].Dates)

	code, _ = do(t, h, stdhttp.MethodPost, "/dates/batch", `{"documents":[]}`)
	assert.Equal(t, stdhttp.StatusBadRequest, code)
}

func TestFormatsHandler(t *testing.T) {
	h := newRouter(t)
	code, env := do(t, h, stdhttp.MethodGet, "/dates/formats", "")
	require.Equal(t, stdhttp.StatusOK, code)

	var rows []domain.FormatRow
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.NotEmpty(t, rows)
	assert.Equal(t, "CONTEXT_YYYY", rows[len(rows)-1].Name)
}
