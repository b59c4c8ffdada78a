// Package version holds the build version, overridable with -ldflags.
package version

// Version is set at build time via -ldflags "-X .../pkg/version.Version=v1.2.3".
var Version = "v0.1.0"
