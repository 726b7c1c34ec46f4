// Package version reports build information for the termbrot binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version   string // Set via ldflags.
	BuildDate string // Set via ldflags.

	Revision  = revision(debug.ReadBuildInfo)
	GoVersion = runtime.Version()
	Platform  = runtime.GOOS + "/" + runtime.GOARCH
)

// GetVersion returns the release version, falling back to the VCS revision.
func GetVersion() string {
	if Version != "" {
		return Version
	}

	return Revision
}

// Summary returns a one-line description of the build.
func Summary() string {
	s := fmt.Sprintf("termbrot %s (%s, %s)", GetVersion(), GoVersion, Platform)
	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

func revision(read func() (*debug.BuildInfo, bool)) string {
	info, ok := read()
	if !ok {
		return "unknown"
	}

	rev := "unknown"
	dirty := false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value[:min(7, len(s.Value))]
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if rev == "unknown" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	if dirty {
		return rev + "-dirty"
	}

	return rev
}
