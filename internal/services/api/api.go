// Package api assembles the datesieve HTTP API from its modules
package api

import (
	"datesieve/internal/core/datescan"
	"datesieve/internal/modkit"
	"datesieve/internal/modkit/httpkit"
	"datesieve/internal/modkit/swaggerkit"
	"datesieve/internal/platform/config"
	"datesieve/internal/platform/logger"
	phttp "datesieve/internal/platform/net/http"
	"datesieve/internal/platform/net/middleware"

	datesmod "datesieve/internal/services/api/dates/module"
	metamod "datesieve/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Engine         *datescan.Engine
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API onto r; r must not have routes yet
//
//	GET  /health              load balancer heartbeat, no logging
//	     /api/v1/meta/*       health, readiness and build info
//	     /api/v1/dates/*      date recognition
//	     /api/docs/*          swagger ui and document, when enabled
//	     /debug/pprof/*       profiler, when enabled
func Mount(r phttp.Router, opt Options) {
	r.Use(middleware.Heartbeat("/health"))

	engine := opt.Engine
	if engine == nil {
		engine = datescan.NewWithOptions(nil, datescan.Options{Logger: opt.Logger})
	}
	deps := modkit.Deps{Cfg: opt.Config, Engine: engine}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []modkit.Module{
		metamod.New(deps),
		datesmod.New(deps, modkit.WithSwagger(opt.EnableSwagger)),
	}

	cfg := opt.Config.Prefix("API_")
	stack := httpkit.CommonStackWith(httpkit.StackOptions{
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		Timeout:     cfg.MayDuration("TIMEOUT", 0),
		Slow:        cfg.MayDuration("SLOW", 0),
		Throttle:    cfg.MayInt("THROTTLE", 0),
		Quiet:       []string{"/api/v1/meta/health", "/api/v1/meta/ready"},
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			deps.Log.Debug().Str("module", m.Name()).Str("prefix", m.Prefix()).Msg("module mounted")
		}
	})
}
