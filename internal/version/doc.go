// Package version exposes build metadata for the controller binary.
//
// Version, Commit and BuildTime are injected via ldflags.
package version
