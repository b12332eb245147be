// Package version reports the build version of countrylist.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// devVersion is reported when the build did not inject a valid semantic version.
const devVersion = "0.0.0-dev"

// version is set at build time with -ldflags "-X .../internal/version.version=1.2.3".
//
//nolint:gochecknoglobals // Set by the linker.
var version = devVersion

// GetVersion returns the build version normalized to semver, or "0.0.0-dev"
// when the injected value is not a valid version.
func GetVersion() string {
	return normalize(version)
}

// UserAgent returns the User-Agent sent to the upstream data source.
func UserAgent() string {
	return "countrylist/" + GetVersion()
}

func normalize(v string) string {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return devVersion
	}
	return parsed.String()
}
