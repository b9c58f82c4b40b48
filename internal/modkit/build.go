package modkit

import (
	"net/http"
	"strings"

	"datesieve/internal/modkit/httpkit"
)

// Built is a module's resolved mount configuration
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	SwaggerOn bool
}

// Option adjusts a Built before it is validated
type Option func(*Built)

func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the route prefix; slashes are normalized by Build
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module middleware; earlier ones run first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithSwagger lets the module contribute to the served OpenAPI document
func WithSwagger(on bool) Option { return func(b *Built) { b.SwaggerOn = on } }

// Build applies opts in order, so later options win
// A blank name or prefix panics: both are wiring mistakes caught at startup
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	if strings.TrimSpace(b.Name) == "" {
		panic("modkit: module name is required")
	}
	b.Prefix = "/" + strings.Trim(strings.TrimSpace(b.Prefix), "/")
	if b.Prefix == "/" {
		panic("modkit: module " + b.Name + " needs a prefix")
	}
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	return b
}

// Mount routes register under the prefix with the module middleware applied
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	r.Route(b.Prefix, func(sub httpkit.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		register(sub)
	})
}
