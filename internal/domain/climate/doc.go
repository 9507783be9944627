// Package climate contains the greenhouse measurement and control types.
//
// It defines Reading (one sample of every channel), Setpoints (the targets the
// controller steers towards), ControlState (the actuator outputs) and the pure
// Decide function mapping the first two onto the third.
package climate
