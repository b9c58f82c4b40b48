// @title         datesieve API
// @version       0.1.0
// @description   Find, parse and normalize dates in free text

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"datesieve/internal/core/datescan"
	"datesieve/internal/platform/config"
	"datesieve/internal/platform/logger"
	phttp "datesieve/internal/platform/net/http"

	"datesieve/internal/services/api"
)

func main() {
	cfg := config.App()

	// bring up logging early
	logger.Init(logger.FromEnv(logger.Options{Service: "datesieve-api"}))
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// one engine for the process, catalog compiled up front
	engine := datescan.NewWithOptions(nil, datescan.Options{Logger: logger.Named("engine")})
	l.Info().Int("formats", engine.Catalog().Len()).Msg("date catalog ready")

	// http server (reads DATESIEVE_API_PORT)
	srv := phttp.NewServer(cfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         cfg,
			Logger:         l,
			Engine:         engine,
			EnableSwagger:  cfg.MayBool("SWAGGER", true),
			EnableProfiler: cfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("http server stopped")
}
