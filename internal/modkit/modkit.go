// Package modkit wires API modules: shared deps, build options and the mount contract
package modkit

import "datesieve/internal/modkit/httpkit"

// Module is the surface the API mounts
type Module interface {
	// Name is used in logs
	Name() string
	// Prefix is the normalized route prefix, eg /dates
	Prefix() string
	// MountRoutes attaches the module under Prefix on r
	MountRoutes(r httpkit.Router)
}
