package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"datesieve/internal/platform/config"
	"datesieve/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ShutdownTimeout bounds the drain after Run's context is cancelled
var ShutdownTimeout = 10 * time.Second

// Server owns the chi mux and the listener lifecycle
type Server struct {
	srv    *stdhttp.Server
	router Router
}

// NewServer reads API_PORT from cfg (default :4000, a bare port is accepted)
// opts receive the mux before any route is added
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		router: AdaptChi(m),
		srv: &stdhttp.Server{
			Addr:              cfg.MayAddr("API_PORT", ":4000"),
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
	}
}

// Router is the route surface over the server's mux
func (s *Server) Router() Router { return s.router }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run listens and serves until ctx is done, then drains within ShutdownTimeout
// A listen failure is returned as is; a clean shutdown returns nil
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("http shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(sctx)
	}
}
