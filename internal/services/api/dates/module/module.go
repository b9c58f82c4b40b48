// Package module wires the dates endpoints into the API
package module

import (
	"datesieve/internal/modkit"
	"datesieve/internal/modkit/httpkit"
	"datesieve/internal/modkit/swaggerkit"
	"datesieve/internal/platform/logger"
	dateshttp "datesieve/internal/services/api/dates/http"
	datessvc "datesieve/internal/services/api/dates/service"
)

// Module serves /dates
type Module struct {
	b   modkit.Built
	svc datessvc.Service
}

// New builds the module over the shared engine; service limits come from deps.Cfg
// The catalog's format names become the date_format validator vocabulary and,
// with swagger on, the enum of every format field in the served document
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("dates"), modkit.WithPrefix("/dates")}, opts...)...)

	engine := deps.EngineOrDefault()
	if err := dateshttp.RegisterValidators(engine.Catalog()); err != nil {
		logger.Named("dates").Panic().Err(err).Msg("register validators failed")
	}
	if b.SwaggerOn {
		swaggerkit.Register(formatEnum(engine.Catalog()))
	}
	return &Module{b: b, svc: datessvc.New(engine, datessvc.FromConfig(deps.Cfg))}
}

// Service exposes the dates service to other modules
func (m *Module) Service() datessvc.Service { return m.svc }

func (m *Module) Name() string { return m.b.Name }

func (m *Module) Prefix() string { return m.b.Prefix }

// MountRoutes mounts the handlers under Prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(r httpkit.Router) { dateshttp.Register(r, m.svc) })
}
