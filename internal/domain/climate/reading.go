package climate

import (
	"fmt"
	"time"
)

// Reading is one sample of every channel taken at the same instant.
type Reading struct {
	// Timestamp is when the sample was taken.
	Timestamp time.Time
	// Temperature in degrees Celsius.
	Temperature float64
	// Humidity in percent.
	Humidity float64
	// Pressure in millibars.
	Pressure float64
}

// Value returns the reading for the given channel.
func (r Reading) Value(c Channel) float64 {
	switch c {
	case Temperature:
		return r.Temperature
	case Humidity:
		return r.Humidity
	case Pressure:
		return r.Pressure
	default:
		return 0
	}
}

// With returns a copy of the reading with the channel set to v.
func (r Reading) With(c Channel, v float64) Reading {
	switch c {
	case Temperature:
		r.Temperature = v
	case Humidity:
		r.Humidity = v
	case Pressure:
		r.Pressure = v
	}

	return r
}

func (r Reading) String() string {
	return fmt.Sprintf("T: %5.1fC H: %5.1f%% P: %6.1f mB", r.Temperature, r.Humidity, r.Pressure)
}

// Setpoints are the temperature and humidity targets of the controller.
type Setpoints struct {
	Temperature float64
	Humidity    float64
}

// Default setpoints applied when none are stored.
const (
	DefaultTemperature = 25.0
	DefaultHumidity    = 55.0
)

// DefaultSetpoints returns the factory targets.
func DefaultSetpoints() Setpoints {
	return Setpoints{
		Temperature: DefaultTemperature,
		Humidity:    DefaultHumidity,
	}
}

// IsUnset reports whether the setpoints carry the "never configured" marker.
//
// A stored temperature of exactly 0.0 means unset, so a genuine 0.0 C target
// cannot be expressed. Existing setpoint files rely on this.
func (s Setpoints) IsUnset() bool {
	return s.Temperature == 0.0
}
