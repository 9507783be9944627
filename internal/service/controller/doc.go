// Package controller runs the greenhouse control loop.
//
// Every cycle samples a reading, appends it to the reading log, decides the
// actuator outputs, evaluates the alarms and hands the result to the displays.
// Failures inside a cycle are logged and never stop the loop.
package controller
