// Package misc keeps program identification stamped at build time.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X chartstyle/misc.version=... -X chartstyle/misc.githash=...".
var (
	version = "dev"
	githash = ""
)

const appName = "chartstyle"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns the stamped hash, falling back to VCS information
// recorded by the go tool.
func GetGitHash() string {
	if githash != "" {
		return githash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
