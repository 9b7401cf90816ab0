// Package versions provides version information for the application.
package versions

import (
	"fmt"
	"runtime"
	"time"
)

const unknownStr = "unknown"

// Version information set by build using -ldflags.
var (
	// Version is the current version of gofer
	Version = "dev"
	// Commit is the git commit hash of the build
	Commit = unknownStr
	// BuildDate is the date when the binary was built
	BuildDate = unknownStr
)

// VersionInfo represents the version information
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersionInfo returns the version information
func GetVersionInfo() VersionInfo {
	version := Version
	if version == "dev" {
		if Commit != unknownStr {
			short := Commit
			if len(short) > 8 {
				short = short[:8]
			}
			version = "build-" + short
		} else {
			version = "build-" + unknownStr
		}
	}

	buildDate := BuildDate
	if t, err := time.Parse(time.RFC3339, buildDate); err == nil {
		buildDate = t.Format("2006-01-02 15:04:05 UTC")
	}

	return VersionInfo{
		Version:   version,
		Commit:    Commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// UserAgent returns the User-Agent string to send with outgoing HTTP requests.
func UserAgent() string {
	return fmt.Sprintf("gofer/%s", GetVersionInfo().Version)
}
