// Package version reports the vpilot build version.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/vpilot/internal/version.Version=v1.0.0 \
//	                   -X github.com/muurk/vpilot/internal/version.Commit=abc123" ./cmd/vpilot
//
// Without ldflags they are filled from the VCS stamp in the build info, and
// fall back to "dev-<timestamp>" / "unknown".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fillFromSettings(info.Settings)
	}

	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fillFromSettings sets whichever of Version and Commit are still empty
// from the vcs.* build settings
func fillFromSettings(settings []debug.BuildSetting) {
	vcs := make(map[string]string, 3)
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision", "vcs.modified", "vcs.time":
			vcs[s.Key] = s.Value
		}
	}

	if Commit == "" {
		if rev := vcs["vcs.revision"]; rev != "" {
			Commit = shortRevision(rev)
			if vcs["vcs.modified"] == "true" {
				Commit += "-dirty"
			}
		}
	}

	// Build info has no tags; use the commit date
	if Version == "" {
		if t, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Full returns the version with the commit, e.g. "v1.0.0 (commit: abc1234)"
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
