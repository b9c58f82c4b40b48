// Package http serves liveness, readiness and build information
package http

import (
	"net/http"
	"time"

	"datesieve/internal/core/datescan"
	"datesieve/internal/core/version"
	"datesieve/internal/modkit/httpkit"
)

// Deps is what the meta endpoints report on; a nil Engine skips the engine checks
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Engine      *datescan.Engine
}

// Register mounts /health, /ready, /version, /service and /engine on r
func Register(r httpkit.Router, d Deps) {
	m := meta(d)
	httpkit.Get(r, "/health", m.health)
	httpkit.Get(r, "/ready", m.ready)
	httpkit.Get(r, "/version", m.version)
	httpkit.Get(r, "/service", m.service)
	httpkit.Get(r, "/engine", m.engine)
}

type meta Deps

// HealthResponse answers the liveness probe
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"datesieve-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck is one readiness probe: ok, fail or skipped
type ReadyCheck struct {
	Name   string `json:"name"            example:"self_test"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"self test parsed 2010-07-02 19:07"`
}

// ReadyResponse is ok when every check passed, fail when any failed and
// degraded otherwise. A failing instance answers 503
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse is the service name and uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"datesieve-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// EngineResponse counts catalog descriptors per rank
type EngineResponse struct {
	Formats int               `json:"formats" example:"43"`
	Ranks   map[string]int    `json:"ranks"`
	Build   version.BuildInfo `json:"build"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (m meta) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: m.ServiceName, Started: stamp(m.StartedAt), Now: stamp(time.Now())}, nil
}

// self test: a fixed RFC 1123 stamp must normalize to the same second
const (
	probeText = "Tue, 02 Jul 2010 19:07:49 GMT"
	probeWant = "2010-07-02 19:07:49"
)

var probes = []struct {
	name string
	run  func(*datescan.Engine) string // "" means ok
}{
	{"catalog", func(e *datescan.Engine) string {
		if e.Catalog().Len() == 0 {
			return "catalog is empty"
		}
		return ""
	}},
	{"self_test", func(e *datescan.Engine) string {
		d, err := e.Parse(probeText)
		if err != nil {
			return err.Error()
		}
		if got := d.NormalizedString(); got != probeWant {
			return "self test parsed " + got
		}
		return ""
	}},
}

// @Summary Readiness: catalog loaded and a self test parse
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /meta/ready [get]
func (m meta) ready(*http.Request) (any, error) {
	out := ReadyResponse{Status: "ok", Now: stamp(time.Now())}
	for _, p := range probes {
		c := ReadyCheck{Name: p.name, Status: "skipped"}
		if m.Engine != nil {
			if c.Error = p.run(m.Engine); c.Error == "" {
				c.Status = "ok"
			} else {
				c.Status = "fail"
			}
		}
		out.Checks = append(out.Checks, c)

		switch {
		case c.Status == "fail":
			out.Status = "fail"
		case c.Status != "ok" && out.Status == "ok":
			out.Status = "degraded"
		}
	}
	if out.Status == "fail" {
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

// @Summary Build and version
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (m meta) version(*http.Request) (any, error) { return m.build(), nil }

func (m meta) build() version.BuildInfo {
	bi := version.Info(m.ServiceName)
	if m.Engine != nil {
		bi.Formats = m.Engine.Catalog().Len()
	}
	return bi
}

// @Summary Service name and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (m meta) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    m.ServiceName,
		Started: stamp(m.StartedAt),
		Uptime:  int64(time.Since(m.StartedAt) / time.Second),
	}, nil
}

// @Summary Catalog size per rank
// @Tags Meta
// @Produce json
// @Success 200 {object} EngineResponse
// @Router /meta/engine [get]
func (m meta) engine(*http.Request) (any, error) {
	out := EngineResponse{Ranks: map[string]int{}, Build: m.build()}
	if m.Engine == nil {
		return out, nil
	}
	cat := m.Engine.Catalog()
	for _, d := range cat.All() {
		out.Ranks[d.Rank.String()]++
	}
	out.Formats = cat.Len()
	return out, nil
}
