package alarm

import (
	"time"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// Alarm is one snapshot slot.
type Alarm struct {
	// Kind is NoAlarm for an empty slot.
	Kind Kind
	// Timestamp is the time of the reading that raised the alarm.
	Timestamp time.Time
	// Value is the offending reading.
	Value float64
}

// Active reports whether the slot holds an alarm.
func (a Alarm) Active() bool {
	return a.Kind != NoAlarm
}

// Snapshot holds the alarms raised by a single reading, indexed by Kind.
type Snapshot [KindCount]Alarm

// Active returns the raised alarms in Kind order.
func (s *Snapshot) Active() []Alarm {
	var active []Alarm

	for kind := NoAlarm + 1; kind < KindCount; kind++ {
		if s[kind].Active() {
			active = append(active, s[kind])
		}
	}

	return active
}

// Get returns the slot for kind.
func (s *Snapshot) Get(kind Kind) Alarm {
	if kind <= NoAlarm || kind >= KindCount {
		return Alarm{}
	}

	return s[kind]
}

// check pairs a reading channel with its thresholds and the kinds they raise.
type check struct {
	channel   climate.Channel
	high, low float64
	highKind  Kind
	lowKind   Kind
}

// Evaluate compares the reading against the limits and returns a fresh snapshot.
// Bounds are inclusive: a value equal to a threshold raises the alarm.
func Evaluate(limits Limits, r climate.Reading) Snapshot {
	var s Snapshot

	checks := [...]check{
		{climate.Temperature, limits.HighTemperature, limits.LowTemperature, HighTemperature, LowTemperature},
		{climate.Humidity, limits.HighHumidity, limits.LowHumidity, HighHumidity, LowHumidity},
		{climate.Pressure, limits.HighPressure, limits.LowPressure, HighPressure, LowPressure},
	}

	for _, c := range checks {
		value := r.Value(c.channel)

		if value >= c.high {
			s[c.highKind] = Alarm{Kind: c.highKind, Timestamp: r.Timestamp, Value: value}
		}

		if value <= c.low {
			s[c.lowKind] = Alarm{Kind: c.lowKind, Timestamp: r.Timestamp, Value: value}
		}
	}

	return s
}
