// Package common holds process-level helpers used by the controller service.
//
// It reads the board serial number for the startup banner and guards against
// two controllers driving the same relays.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
