// Package config reads application settings from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"datesieve/internal/platform/logger"
)

// AppPrefix namespaces every setting of the binaries
const AppPrefix = "DATESIEVE_"

// Conf is a namespaced view over environment variables, eg "DATESIEVE_API_"
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// App is New().Prefix(AppPrefix)
func App() Conf { return Conf{prefix: AppPrefix} }

// Prefix creates a child Conf with an additional prefix, eg cfg.Prefix("API_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key is the fully qualified variable name
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) lookup(key string) string { return strings.TrimSpace(os.Getenv(c.Key(key))) }

// may parses the value with parse; empty gives def, unparsable logs and gives def
func may[T any](c Conf, key string, def T, kind string, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Interface("default", def).
			Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

// MayString returns the value or def if missing or blank
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def
func (c Conf) MayInt(key string, def int) int {
	return may(c, key, def, "int", strconv.Atoi)
}

// MayBool returns the value or def; accepts what strconv.ParseBool does
func (c Conf) MayBool(key string, def bool) bool {
	return may(c, key, def, "bool", strconv.ParseBool)
}

// MayDuration returns the value or def; "90s", "1m30s"
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, "duration", time.ParseDuration)
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	parts := strings.Split(c.lookup(key), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayAddr reads a listen address; a bare port such as "4000" becomes ":4000"
func (c Conf) MayAddr(key, def string) string {
	return may(c, key, def, "address", func(s string) (string, error) {
		if !strings.Contains(s, ":") {
			s = ":" + s
		}
		port := s[strings.LastIndexByte(s, ':')+1:]
		n, err := strconv.Atoi(port)
		if err != nil {
			return "", err
		}
		if n < 0 || n > 65535 {
			return "", strconv.ErrRange
		}
		return s, nil
	})
}
