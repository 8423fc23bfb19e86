// Package version holds the tool's own build identity, stamped via ldflags
// at release time.
package version

var (
	// Version is the semantic version of aerobuild itself
	Version = "dev"

	// Commit is the git commit aerobuild was built from
	Commit = "none"

	// BuildTime is when aerobuild was built
	BuildTime = "unknown"
)
