// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Vireo is the canonical application identifier used for filesystem paths and CLI branding.
	Vireo = "vireo"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Engine is the default playback engine executable.
	Engine = "mpv"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
