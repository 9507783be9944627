package climate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestDecide covers both actuators around their setpoints, including the exclusive boundary.
func TestDecide(t *testing.T) {
	t.Parallel()

	target := Setpoints{Temperature: 25, Humidity: 55}

	cases := []struct {
		name    string
		reading Reading
		want    ControlState
	}{
		{
			name:    "heater on, humidifier off",
			reading: Reading{Temperature: 20, Humidity: 60},
			want:    ControlState{Heater: true, Humidifier: false},
		},
		{
			name:    "both on",
			reading: Reading{Temperature: -3, Humidity: 10},
			want:    ControlState{Heater: true, Humidifier: true},
		},
		{
			name:    "both off",
			reading: Reading{Temperature: 40, Humidity: 90},
			want:    ControlState{},
		},
		{
			name:    "equal to setpoint is off",
			reading: Reading{Temperature: 25, Humidity: 55},
			want:    ControlState{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Decide(target, tc.reading)
			require.Equal(t, tc.want, got)
			// Same inputs, same outputs.
			require.Equal(t, got, Decide(target, tc.reading))
		})
	}
}

// TestDecide_IgnoresPressureAndTime ensures only temperature and humidity affect the outputs.
func TestDecide_IgnoresPressureAndTime(t *testing.T) {
	t.Parallel()

	target := DefaultSetpoints()
	a := Reading{Timestamp: time.Unix(0, 0), Temperature: 24.9, Humidity: 54.9, Pressure: 980}
	b := Reading{Timestamp: time.Now(), Temperature: 24.9, Humidity: 54.9, Pressure: 1010}

	require.Equal(t, Decide(target, a), Decide(target, b))
}

// TestSetpoints_IsUnset checks the zero-temperature marker.
func TestSetpoints_IsUnset(t *testing.T) {
	t.Parallel()

	require.True(t, Setpoints{}.IsUnset())
	require.True(t, Setpoints{Humidity: 40}.IsUnset())
	require.False(t, DefaultSetpoints().IsUnset())
}

// TestChannelRanges pins the operating ranges used by the simulator and the display.
func TestChannelRanges(t *testing.T) {
	t.Parallel()

	require.Equal(t, Range{Low: -10, High: 50}, Temperature.Range())
	require.Equal(t, Range{Low: 0, High: 100}, Humidity.Range())
	require.Equal(t, Range{Low: 975, High: 1016}, Pressure.Range())
	require.InDelta(t, 60.0, Temperature.Range().Span(), 1e-9)
}

// TestReading_ValueWith ensures channel accessors round-trip.
func TestReading_ValueWith(t *testing.T) {
	t.Parallel()

	var r Reading
	for i, c := range Channels {
		r = r.With(c, float64(i+1))
	}

	require.InDelta(t, 1.0, r.Value(Temperature), 1e-9)
	require.InDelta(t, 2.0, r.Value(Humidity), 1e-9)
	require.InDelta(t, 3.0, r.Value(Pressure), 1e-9)
}
