// File: version.go
// Title: Build Version Information
// Description: Version, commit and build date of the textx binary. The
//              values are injected at build time via -ldflags.
// Author: msto63
// Version: v0.2.0
// Created: 2025-12-06
// Modified: 2025-12-14
//
// Change History:
// - 2025-12-06 v0.1.0: Initial implementation with per-service versions
// - 2025-12-14 v0.2.0: Single build version set via -ldflags

package version

import (
	"fmt"
	"regexp"
	"runtime"
)

// Set via -ldflags "-X github.com/msto63/textx/pkg/core/version.Version=..."
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var semverRegex = regexp.MustCompile(`^v?\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`)

// Info describes a build
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// IsRelease reports whether the version is a semantic version rather than a
// development build
func (i Info) IsRelease() bool {
	return semverRegex.MatchString(i.Version)
}

// Short returns the commit abbreviated to seven characters
func (i Info) Short() string {
	if len(i.GitCommit) > 7 {
		return i.GitCommit[:7]
	}
	return i.GitCommit
}

func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", i.Version, i.Short(), i.BuildDate, i.GoVersion)
}
