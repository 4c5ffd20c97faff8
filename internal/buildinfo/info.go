// Package buildinfo carries version metadata stamped in at build time.
package buildinfo

// Set via -ldflags "-X ..." by the release build; defaults identify a
// development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
