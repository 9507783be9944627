// Package sensor supplies greenhouse readings.
//
// A Source returns one value per channel and call. Simulator draws bounded
// pseudo-random values, BME280 reads a Bosch environmental sensor over I2C
// through gobot, and Fallback hides transient instrument failures from the
// control loop by repeating the last good value.
package sensor
