// Package logger wraps zerolog with a process root logger and request scoped children
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"datesieve/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// EnvPrefix namespaces the logging variables, eg DATESIEVE_LOG_LEVEL
const EnvPrefix = "DATESIEVE_LOG_"

// Options configures the logger
type Options struct {
	Level      string
	Format     string // console or json
	Service    string
	Component  string
	Writer     io.Writer
	WithCaller bool
}

// FromEnv overlays DATESIEVE_LOG_* on def; unset variables keep def's values
func FromEnv(def Options) Options {
	rc := raw.New().Prefix(EnvPrefix)
	out := def
	out.Level = strings.ToLower(rc.Get("LEVEL", or(def.Level, "info")))
	out.Format = strings.ToLower(rc.Get("FORMAT", or(def.Format, "console")))
	out.Service = rc.Get("SERVICE", def.Service)
	out.Component = rc.Get("COMPONENT", def.Component)
	out.WithCaller = rc.GetBool("CALLER", def.WithCaller)
	return out
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Logger is the project wide logging type
type Logger = zerolog.Logger

var (
	once sync.Once
	root atomic.Pointer[zerolog.Logger]
)

// New builds a logger from opt without touching the root
func New(opt Options) Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opt.Writer != nil}
	}

	ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	if opt.Component != "" {
		ctx = ctx.Str("component", opt.Component)
	}
	if opt.WithCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// Init sets the root logger; only the first call has an effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opt)
		root.Store(&l)
	})
}

// Get returns the root logger, initializing it from the environment if needed
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv(Options{}))
	return root.Load()
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		if strings.EqualFold(strings.TrimSpace(s), "warning") {
			return zerolog.WarnLevel
		}
		return zerolog.InfoLevel
	}
	return lvl
}

type ctxKey struct{ name string }

var (
	keyRequestID = ctxKey{"request_id"}
	keyClientIP  = ctxKey{"client_ip"}
)

// WithRequest annotates ctx with request scoped fields; empty values are skipped
func WithRequest(ctx context.Context, reqID, clientIP string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, keyRequestID, reqID)
	}
	if clientIP != "" {
		ctx = context.WithValue(ctx, keyClientIP, clientIP)
	}
	return ctx
}

// C returns a child of the root carrying request_id and client_ip from ctx
func C(ctx context.Context) *Logger {
	b := Get().With()
	for _, k := range []ctxKey{keyRequestID, keyClientIP} {
		if s, ok := ctx.Value(k).(string); ok && s != "" {
			b = b.Str(k.name, s)
		}
	}
	l := b.Logger()
	return &l
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
