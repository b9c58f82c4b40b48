// Package module wires the meta endpoints into the API
package module

import (
	"time"

	"datesieve/internal/modkit"
	"datesieve/internal/modkit/httpkit"
	metahttp "datesieve/internal/services/api/meta/http"
)

// ServiceName is reported by the meta endpoints unless DATESIEVE_SERVICE_NAME is set
const ServiceName = "datesieve-api"

// Module serves /meta
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New builds the meta module; the start time is taken here
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)

	return &Module{b: b, deps: metahttp.Deps{
		ServiceName: deps.Cfg.MayString("SERVICE_NAME", ServiceName),
		StartedAt:   time.Now(),
		Engine:      deps.Engine,
	}}
}

func (m *Module) Name() string { return m.b.Name }

func (m *Module) Prefix() string { return m.b.Prefix }

// MountRoutes mounts the handlers under Prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(r httpkit.Router) { metahttp.Register(r, m.deps) })
}
