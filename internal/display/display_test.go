package display

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/greenhouse-controller/internal/domain/alarm"
	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// TestBarHeight checks the scaling formula, its clamping and degenerate inputs.
func TestBarHeight(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value float64
		span  climate.Range
		want  int
	}{
		{"temperature 25", 25, climate.Temperature.Range(), 4},
		{"temperature floor", -10, climate.Temperature.Range(), 0},
		{"temperature ceiling", 50, climate.Temperature.Range(), 7},
		{"humidity 55", 55, climate.Humidity.Range(), 4},
		{"humidity 10", 10, climate.Humidity.Range(), 0},
		{"pressure 1000", 1000, climate.Pressure.Range(), 4},
		{"far above", 500, climate.Temperature.Range(), 7},
		{"far below", -500, climate.Temperature.Range(), 0},
		{"not a number", math.NaN(), climate.Humidity.Range(), 0},
		{"huge negative", -1e300, climate.Temperature.Range(), 0},
		{"huge positive", 1e300, climate.Temperature.Range(), 7},
		{"beyond int64", -1e19, climate.Pressure.Range(), 0},
		{"negative infinity", math.Inf(-1), climate.Temperature.Range(), 0},
		{"positive infinity", math.Inf(1), climate.Temperature.Range(), 7},
		{"empty range", 5, climate.Range{Low: 3, High: 3}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, BarHeight(tc.value, tc.span))
		})
	}
}

// TestPanel_Render draws bars and setpoint markers on a grid.
func TestPanel_Render(t *testing.T) {
	t.Parallel()

	grid := NewGrid(nil)
	p := NewPanel(grid)

	require.NoError(t, grid.Clear(Green))

	r := climate.Reading{Temperature: 25, Humidity: 55, Pressure: 975}
	require.NoError(t, p.Render(r, climate.Setpoints{Temperature: 25, Humidity: 55}))

	for row := range Size {
		switch {
		case row < 4:
			require.Equal(t, Green, grid.Pixel(row, TemperatureBar), "temperature row %d", row)
			require.Equal(t, Green, grid.Pixel(row, HumidityBar), "humidity row %d", row)
		case row == 4:
			require.Equal(t, Magenta, grid.Pixel(row, TemperatureBar))
			require.Equal(t, Magenta, grid.Pixel(row, HumidityBar))
		default:
			require.Equal(t, Black, grid.Pixel(row, TemperatureBar))
			require.Equal(t, Black, grid.Pixel(row, HumidityBar))
		}

		wantPressure := Black
		if row == 0 {
			wantPressure = Green
		}

		require.Equal(t, wantPressure, grid.Pixel(row, PressureBar))

		// Untouched columns were cleared.
		for _, col := range []int{0, 1, 2, 4, 6} {
			require.Equal(t, Black, grid.Pixel(row, col))
		}
	}
}

// TestPanel_ClampsMarkers keeps out-of-range setpoints on the matrix.
func TestPanel_ClampsMarkers(t *testing.T) {
	t.Parallel()

	grid := NewGrid(nil)
	r := climate.Reading{Temperature: -50, Humidity: -5, Pressure: 2000}

	require.NoError(t, NewPanel(grid).Render(r, climate.Setpoints{Temperature: 90, Humidity: -20}))
	require.Equal(t, Magenta, grid.Pixel(7, TemperatureBar))
	require.Equal(t, Magenta, grid.Pixel(0, HumidityBar))
	require.Equal(t, Green, grid.Pixel(7, PressureBar))
}

// TestGrid_Flush prints the grid when a writer is set.
func TestGrid_Flush(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	grid := NewGrid(&buf)
	require.NoError(t, grid.SetPixel(0, 0, Green))
	require.NoError(t, grid.Flush())
	require.Contains(t, buf.String(), "##")
	require.Contains(t, buf.String(), "..")
}

// TestFramebuffer_Flush writes RGB565 pixels in row-major order.
func TestFramebuffer_Flush(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fb1")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	fb := NewFramebuffer(path)
	require.NoError(t, fb.Clear(Black))
	require.NoError(t, fb.SetPixel(0, 7, Green))
	require.NoError(t, fb.SetPixel(2, 5, Magenta))
	require.NoError(t, fb.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, Size*Size*2)

	word := func(row, col int) uint16 {
		return binary.LittleEndian.Uint16(data[(row*Size+col)*2:])
	}

	require.Equal(t, uint16(0x07e0), word(0, 7))
	require.Equal(t, uint16(0xf81f), word(2, 5))
	require.Equal(t, uint16(0), word(3, 3))
}

// TestFramebuffer_MissingDevice reports an error.
func TestFramebuffer_MissingDevice(t *testing.T) {
	t.Parallel()

	fb := NewFramebuffer(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, fb.Flush())
}

// TestConsole_Show prints every section of a frame.
func TestConsole_Show(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ts := time.Date(2024, time.June, 5, 14, 3, 9, 0, time.Local)
	r := climate.Reading{Timestamp: ts, Temperature: 35, Humidity: 50, Pressure: 1000}
	sp := climate.DefaultSetpoints()

	f := Frame{
		Reading:   r,
		Setpoints: sp,
		Control:   climate.Decide(sp, r),
		Alarms:    alarm.Evaluate(alarm.DefaultLimits(), r),
	}

	c := NewConsole(&buf)
	require.NoError(t, c.Header(0x401b6db6))
	require.NoError(t, c.Show(context.Background(), f))

	out := buf.String()
	require.Contains(t, out, "serial 401b6db6")
	require.Contains(t, out, "Wed Jun  5 14:03:09 2024")
	require.Contains(t, out, "T:  35.0C")
	require.Contains(t, out, "P: 1000.0 mB")
	require.Contains(t, out, "T:  25.0C\tH:  55.0%")
	require.Contains(t, out, "Heater: OFF")
	require.Contains(t, out, "H:  50.0%\tP:")
	require.Contains(t, out, "High Temperature Alarm 35.0")
	// Readings and the alarm share the ctime layout.
	require.Equal(t, 2, strings.Count(out, "Wed Jun  5 14:03:09 2024"))
	require.NotContains(t, out, "Low Temperature")
}

// TestColor_RGB565 checks the packing.
func TestColor_RGB565(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint16(0xffff), Color{R: 0xff, G: 0xff, B: 0xff}.RGB565())
	require.Equal(t, uint16(0), Black.RGB565())
	require.Equal(t, "#ff00ff", Magenta.Hex())
}
