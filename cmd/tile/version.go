package main

import (
	"fmt"
	"runtime/debug"
)

// Version information - set by ldflags during build
var (
	Version   = ""
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// getVersion returns the version string.
// Priority: ldflags > debug.ReadBuildInfo > "dev"
func getVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// versionTemplate is the cobra template printed by --version.
func versionTemplate() string {
	return fmt.Sprintf("tile {{.Version}}\n  Build time: %s\n  Git commit: %s\n", BuildTime, GitCommit)
}
