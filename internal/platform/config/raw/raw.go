// Package raw reads environment variables without logging, so the logger can
// configure itself from the environment before config is usable
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a namespaced view over environment variables
type Conf struct{ prefix string }

// New returns a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix returns a child Conf with an additional prefix (eg "LOG_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Get returns the trimmed value or def when it is empty
func (c Conf) Get(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(c.prefix + key)); v != "" {
		return v
	}
	return def
}

// GetBool parses with strconv.ParseBool; empty or unparsable gives def
func (c Conf) GetBool(key string, def bool) bool {
	v, err := strconv.ParseBool(c.Get(key, ""))
	if err != nil {
		return def
	}
	return v
}
