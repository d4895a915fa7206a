// Package version reports build metadata for the fractalcode binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Program is the name printed by the version command
const Program = "fractalcode"

// Build-time variables (set via ldflags). Values left at their defaults are
// filled from the module build info when the binary carries it.
var (
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "unknown"
)

const (
	defaultVersion = "dev"
	unknown        = "unknown"
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	Commit    string `json:"commit"`
	Modified  bool   `json:"modified"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Get returns the current version info
func Get() Info {
	info := Info{
		Version:   Version,
		BuildTime: BuildTime,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = withBuildInfo(info, bi)
	}
	return info
}

// withBuildInfo fills fields that ldflags did not set from go install
// metadata: the module version and the vcs.* settings
func withBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == defaultVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
				if len(info.Commit) > 12 {
					info.Commit = info.Commit[:12]
				}
			}
		case "vcs.time":
			if info.BuildTime == unknown {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String returns a formatted version string
func (i Info) String() string {
	commit := i.Commit
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s %s (commit: %s, built: %s, %s %s/%s)",
		Program, i.Version, commit, i.BuildTime, i.GoVersion, i.OS, i.Arch)
}

// Short returns the version alone, as shown by --version
func Short() string {
	return Get().Version
}

// Full returns the complete version line
func Full() string {
	return Get().String()
}
