// Package constant defines immutable application-level identifiers.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "mcuc"

	// Version is the current application semantic version string.
	Version = "1.1.0"
)

// Build metadata, set with -ldflags "-X github.com/mcuc-cli/mcuc/constant.Revision=...".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
