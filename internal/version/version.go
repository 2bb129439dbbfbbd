package version

import "runtime/debug"

// Version is overridable at link time:
//
//	go build -ldflags "-X github.com/Jarred-Sumner/cpu/internal/version.Version=1.2.3"
var Version = ""

// String returns the tool's semantic version. When no version was linked in,
// it falls back to the module version recorded in the build info.
func String() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "devel"
}
