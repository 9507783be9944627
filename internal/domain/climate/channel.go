package climate

import "fmt"

// Channel identifies one of the measured quantities.
type Channel int

const (
	// Temperature in degrees Celsius.
	Temperature Channel = iota
	// Humidity as relative humidity percent.
	Humidity
	// Pressure in millibars.
	Pressure
)

// Channels lists every channel in sampling order.
var Channels = [...]Channel{Temperature, Humidity, Pressure} //nolint:gochecknoglobals // Fixed table.

// Range is a half-open [Low, High) span of plausible channel values.
type Range struct {
	Low  float64
	High float64
}

// Span returns High - Low.
func (r Range) Span() float64 {
	return r.High - r.Low
}

// Range returns the nominal operating range of the channel. The simulator draws
// from it and the pixel matrix scales bars against it.
func (c Channel) Range() Range {
	switch c {
	case Temperature:
		return Range{Low: -10, High: 50}
	case Humidity:
		return Range{Low: 0, High: 100}
	case Pressure:
		return Range{Low: 975, High: 1016}
	default:
		return Range{}
	}
}

// Unit returns the display unit of the channel.
func (c Channel) Unit() string {
	switch c {
	case Temperature:
		return "C"
	case Humidity:
		return "%"
	case Pressure:
		return "mB"
	default:
		return ""
	}
}

func (c Channel) String() string {
	switch c {
	case Temperature:
		return "temperature"
	case Humidity:
		return "humidity"
	case Pressure:
		return "pressure"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}
