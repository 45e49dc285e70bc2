// Package version holds build metadata for the sortviz binary.
package version

import (
	"fmt"
	"runtime/debug"
)

const unknown = "unknown"

// Set via -ldflags "-X github.com/ansonlam23/algorithm-visualizer/pkg/version.Version=...".
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// InitBinaryVersion fills Commit and Date from the embedded VCS info when
// the linker did not set them.
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	apply(info)
}

func apply(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if Commit == unknown {
				Commit = setting.Value
			}
		case "vcs.time":
			if Date == unknown {
				Date = setting.Value
			}
		}
	}
}

// String formats the version line printed by "sortviz version".
func String() string {
	return fmt.Sprintf("sortviz %s (commit: %s, built: %s)", Version, Commit, Date)
}
