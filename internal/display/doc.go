// Package display renders the controller status.
//
// Console writes a text block per cycle. Panel draws bar graphs of the readings
// and setpoint markers on an 8x8 LED Matrix, which is either the Sense HAT
// framebuffer or an in-memory Grid printed to the terminal.
package display
