// Package version carries the build information of the clio binaries.
package version

import "runtime/debug"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/clio/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/clio/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/clio/internal/version.Date={{.Date}}
)

// Info is the build information, falling back to what the Go toolchain
// recorded when the binary was built without ldflags.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the build information.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if info.Version != "dev" {
		return info
	}
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := build.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range build.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		}
	}
	return info
}
