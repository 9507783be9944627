// Package alarm contains the alarm limits and per-cycle alarm evaluation.
//
// A Snapshot has one slot per Kind and is rebuilt from scratch for every
// reading: nothing latches, and a breach that clears simply disappears.
package alarm
