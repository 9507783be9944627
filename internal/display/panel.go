package display

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// Bar columns on the matrix.
const (
	TemperatureBar = 7
	HumidityBar    = 5
	PressureBar    = 3
)

// Panel draws the readings as vertical bars with setpoint markers.
type Panel struct {
	m Matrix
}

// NewPanel creates a panel on m.
func NewPanel(m Matrix) *Panel {
	return &Panel{m: m}
}

// Show draws the frame.
func (p *Panel) Show(_ context.Context, f Frame) error {
	return p.Render(f.Reading, f.Setpoints)
}

// Render clears the matrix, draws green bars for temperature, humidity and
// pressure and magenta markers for the temperature and humidity setpoints.
func (p *Panel) Render(r climate.Reading, sp climate.Setpoints) error {
	if err := p.m.Clear(Black); err != nil {
		return fmt.Errorf("clear matrix: %w", err)
	}

	bars := []struct {
		col int
		ch  climate.Channel
	}{
		{TemperatureBar, climate.Temperature},
		{HumidityBar, climate.Humidity},
		{PressureBar, climate.Pressure},
	}

	var errs []error

	for _, b := range bars {
		errs = append(errs, p.bar(b.col, Green, BarHeight(r.Value(b.ch), b.ch.Range())))
	}

	errs = append(errs,
		p.m.SetPixel(BarHeight(sp.Temperature, climate.Temperature.Range()), TemperatureBar, Magenta),
		p.m.SetPixel(BarHeight(sp.Humidity, climate.Humidity.Range()), HumidityBar, Magenta),
		p.m.Flush(),
	)

	return errors.Join(errs...)
}

// bar lights rows 0..height of col and blanks the rest.
func (p *Panel) bar(col int, c Color, height int) error {
	height = clamp(height)

	for row := range Size {
		pixel := c
		if row > height {
			pixel = Black
		}

		if err := p.m.SetPixel(row, col, pixel); err != nil {
			return fmt.Errorf("set pixel %d,%d: %w", row, col, err)
		}
	}

	return nil
}
