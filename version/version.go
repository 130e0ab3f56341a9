// Package version reports the program, Go runtime and Fyne versions.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the program version. Overridden at link time with -X.
var Version = "0.1"

const fyneModule = "fyne.io/fyne/v2"

// Banner returns the three-line version text printed by --version.
func Banner() string {
	return fmt.Sprintf("breaktimer: %s\nGo: %s\nFyne: %s", Version, runtime.Version(), FyneVersion())
}

// FyneVersion returns the linked Fyne module version, or "unknown" when build
// info is unavailable (e.g. under go test).
func FyneVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return moduleVersion(info, fyneModule)
}

func moduleVersion(info *debug.BuildInfo, path string) string {
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}
