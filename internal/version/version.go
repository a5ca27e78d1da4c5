package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the fluentscan CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.3.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionRestColor  = color.New(color.FgGreen)
)

// Colored returns Version with the major component highlighted. Colour
// follows the global color.NoColor switch.
func Colored() string {
	major, rest, found := strings.Cut(Version, ".")
	if found {
		rest = "." + rest
	}
	return versionMajorColor.Sprint(major) + versionRestColor.Sprint(rest)
}
