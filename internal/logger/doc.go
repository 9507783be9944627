// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (InfoKV, WarnKV, ErrorKV, etc.).
//
// The controller and its collaborators accept a context and extract the logger
// from it, so every cycle logs with the run identifier attached.
package logger
