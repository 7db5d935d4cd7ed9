// Package cmd holds build metadata injected with -ldflags "-X".
package cmd

// Set by the release build, e.g.
// -X github.com/thoreinstein/ado/cmd.Version=1.0.0
var (
	// Version is the release version.
	Version = "0.0.0-dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
