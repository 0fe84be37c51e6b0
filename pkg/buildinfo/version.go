// Package buildinfo exposes the version stamped into the binary.
//
// Release builds set the variables through ldflags:
//
//	go build -ldflags "-X github.com/ahuangsnail/quire/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/ahuangsnail/quire/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/ahuangsnail/quire/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries installed with plain `go install` fall back to the module
// version and VCS metadata the toolchain records.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and Date identify the build. The defaults mark a
// development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	if Version != "dev" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			Commit = s.Value
		case "vcs.time":
			Date = s.Value
		}
	}
}

// Template is the cobra version template shown by `quire --version`.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
