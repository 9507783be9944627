// Package setpoints implements persistence for the controller targets.
//
// The FileRepository stores and loads the setpoints as JSON on disk and exposes a
// Repository interface that the controller service depends on.
package setpoints
