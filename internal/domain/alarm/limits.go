package alarm

import (
	"errors"
	"fmt"
)

// Limits are the inclusive alarm thresholds for every channel.
type Limits struct {
	HighTemperature float64 `yaml:"high_temperature"`
	LowTemperature  float64 `yaml:"low_temperature"`
	HighHumidity    float64 `yaml:"high_humidity"`
	LowHumidity     float64 `yaml:"low_humidity"`
	HighPressure    float64 `yaml:"high_pressure"`
	LowPressure     float64 `yaml:"low_pressure"`
}

// Factory alarm thresholds.
const (
	DefaultHighTemperature = 30
	DefaultLowTemperature  = 10
	DefaultHighHumidity    = 70
	DefaultLowHumidity     = 25
	DefaultHighPressure    = 1016
	DefaultLowPressure     = 985
)

// errInvertedLimits is returned when a high threshold does not exceed its low one.
var errInvertedLimits = errors.New("high limit must be greater than low limit")

// DefaultLimits returns the factory thresholds.
func DefaultLimits() Limits {
	return Limits{
		HighTemperature: DefaultHighTemperature,
		LowTemperature:  DefaultLowTemperature,
		HighHumidity:    DefaultHighHumidity,
		LowHumidity:     DefaultLowHumidity,
		HighPressure:    DefaultHighPressure,
		LowPressure:     DefaultLowPressure,
	}
}

// IsZero reports whether no threshold has been configured.
func (l Limits) IsZero() bool {
	return l == Limits{}
}

// Validate checks that every high threshold lies above its low threshold, which
// keeps high and low alarms of one channel mutually exclusive.
func (l Limits) Validate() error {
	pairs := []struct {
		name      string
		high, low float64
	}{
		{"temperature", l.HighTemperature, l.LowTemperature},
		{"humidity", l.HighHumidity, l.LowHumidity},
		{"pressure", l.HighPressure, l.LowPressure},
	}

	for _, p := range pairs {
		if p.high <= p.low {
			return fmt.Errorf("%s limits %.1f/%.1f: %w", p.name, p.high, p.low, errInvertedLimits)
		}
	}

	return nil
}
