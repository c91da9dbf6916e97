// Package version reports the plugin build version.
package version

import (
	"runtime"

	goversion "github.com/hashicorp/go-version"
)

var (
	Version = "0.8.0-dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return "pinsearch " + Version + " (commit=" + Commit + ", date=" + Date + ", go=" + runtime.Version() + ")"
}

// Parsed returns Version as a semantic version, or nil if it does not parse.
func Parsed() *goversion.Version {
	v, err := goversion.NewVersion(Version)
	if err != nil {
		return nil
	}
	return v
}

// IsPrerelease reports whether the build carries a prerelease suffix.
// Unparsable versions count as prereleases.
func IsPrerelease() bool {
	v := Parsed()
	return v == nil || v.Prerelease() != ""
}
