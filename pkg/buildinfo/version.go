// Package buildinfo reports the datanate version.
//
// Release builds set the variables via ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/datanate/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/datanate/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/datanate/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/datanate
//
// Binaries built with go install carry no ldflags; [Get] then falls back to
// the module version and VCS stamps recorded by the Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Unset values of the ldflags variables.
const (
	devVersion  = "dev"
	noCommit    = "none"
	unknownDate = "unknown"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = devVersion

	// Commit is the git commit SHA.
	Commit = noCommit

	// Date is the build timestamp.
	Date = unknownDate
)

// Info is the resolved build information.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get resolves build information. Values set via ldflags win over those
// embedded by the toolchain.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

func resolve(bi *debug.BuildInfo) Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if bi == nil {
		return info
	}
	if info.Version == devVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == noCommit:
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == unknownDate:
			info.Date = s.Value
		}
	}
	return info
}

// String returns the formatted build information.
func String() string {
	i := Get()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", i.Version, i.Commit, i.Date)
}

// Template returns the version template string for cobra.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", i.Version, i.Commit, i.Date)
}
