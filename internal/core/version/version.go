// Package version reports what was built: the release set with -ldflags, or the
// VCS stamp the Go toolchain embeds when it is not set
//
//	go build -ldflags "-X datesieve/internal/core/version.version=v0.1.0 \
//	  -X datesieve/internal/core/version.commit=abcd -X datesieve/internal/core/version.date=2026-10-19"
package version

import (
	"runtime"
	"runtime/debug"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// BuildInfo describes one binary; Formats is filled by callers holding an engine
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"go_version"`
	Formats   int    `json:"formats,omitempty"`
}

// Info returns the build of the running binary under the given service name
func Info(service string) BuildInfo {
	bi := BuildInfo{Service: service, Version: version, Commit: commit, Date: date, GoVersion: runtime.Version()}
	if bi.Commit != "" && bi.Date != "" {
		return bi
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && bi.Commit == "":
				bi.Commit = s.Value
			case s.Key == "vcs.time" && bi.Date == "":
				bi.Date = s.Value
			}
		}
	}
	return bi
}
