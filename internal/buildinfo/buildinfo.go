// Package buildinfo carries version stamps injected with
// -ldflags "-X mandelview/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the compact identifier shown in the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// String is the long form used in startup logs.
func String() string {
	return fmt.Sprintf("mandelview %s (commit %s, built %s)", Version, Commit, Date)
}
