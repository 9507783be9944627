package alarm

import "fmt"

// Kind identifies an alarm condition. NoAlarm marks an empty slot.
type Kind int

const (
	NoAlarm Kind = iota
	HighTemperature
	LowTemperature
	HighHumidity
	LowHumidity
	HighPressure
	LowPressure

	// KindCount is the number of snapshot slots, sentinel included.
	KindCount
)

//nolint:gochecknoglobals // Lookup table.
var kindNames = [KindCount]string{
	NoAlarm:         "No Alarms",
	HighTemperature: "High Temperature",
	LowTemperature:  "Low Temperature",
	HighHumidity:    "High Humidity",
	LowHumidity:     "Low Humidity",
	HighPressure:    "High Pressure",
	LowPressure:     "Low Pressure",
}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}
