package display

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
)

// ctimeLayout mirrors the classic ctime rendering, e.g. "Wed Jun  5 14:03:09 2024".
const ctimeLayout = "Mon Jan _2 15:04:05 2006"

// Console writes a text status block for every frame.
type Console struct {
	w      io.Writer
	title  lipgloss.Style
	on     lipgloss.Style
	alarm  lipgloss.Style
	subtle lipgloss.Style
}

// NewConsole creates a console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{
		w:      w,
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		on:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		alarm:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		subtle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Header prints the banner shown once at startup.
func (c *Console) Header(serial uint64) error {
	_, err := fmt.Fprintln(c.w, c.title.Render(fmt.Sprintf("Greenhouse Controller, serial %x", serial)))

	return err
}

// Show prints readings, setpoints, controls and alarms.
func (c *Console) Show(_ context.Context, f Frame) error {
	var b strings.Builder

	r := f.Reading
	fmt.Fprintf(&b, "\n%s %s\tT: %5.1f%s\tH: %5.1f%s\tP: %6.1f %s\n",
		c.subtle.Render(r.Timestamp.Local().Format(ctimeLayout)), c.title.Render("Readings"),
		r.Temperature, climate.Temperature.Unit(),
		r.Humidity, climate.Humidity.Unit(),
		r.Pressure, climate.Pressure.Unit())
	fmt.Fprintf(&b, " %s\tT: %5.1f%s\tH: %5.1f%s\n",
		c.title.Render("Setpoints"),
		f.Setpoints.Temperature, climate.Temperature.Unit(),
		f.Setpoints.Humidity, climate.Humidity.Unit())
	fmt.Fprintf(&b, " %s\tHeater: %s\tHumidifier: %s\n",
		c.title.Render("Controls"), c.onOff(f.Control.Heater), c.onOff(f.Control.Humidifier))

	b.WriteString("\n" + c.title.Render("Alarms") + "\n")

	active := f.Alarms.Active()
	if len(active) == 0 {
		b.WriteString(" " + c.subtle.Render("none") + "\n")
	}

	for _, a := range active {
		fmt.Fprintf(&b, " %s %s\n",
			c.alarm.Render(fmt.Sprintf("%s Alarm %.1f", a.Kind, a.Value)),
			c.subtle.Render(a.Timestamp.Local().Format(ctimeLayout)))
	}

	if _, err := io.WriteString(c.w, b.String()); err != nil {
		return fmt.Errorf("write console: %w", err)
	}

	return nil
}

// onOff renders an actuator flag.
func (c *Console) onOff(on bool) string {
	if on {
		return c.on.Render(climate.OnOff(true))
	}

	return climate.OnOff(false)
}
