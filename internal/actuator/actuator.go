// Package actuator switches the heater and humidifier.
package actuator

import (
	"context"
	"errors"
	"fmt"

	"gobot.io/x/gobot/v2/drivers/gpio"

	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
	"github.com/oshokin/greenhouse-controller/internal/logger"
)

// Driver applies a control state to the physical outputs.
type Driver interface {
	Apply(ctx context.Context, state climate.ControlState) error
}

// LogOnly records the requested state and logs transitions. Used with the simulator.
type LogOnly struct {
	state   climate.ControlState
	applied bool
}

// NewLogOnly creates a driver that only logs.
func NewLogOnly() *LogOnly {
	return new(LogOnly)
}

// Apply stores the state and logs it when it changed.
func (l *LogOnly) Apply(ctx context.Context, state climate.ControlState) error {
	if !l.applied || state != l.state {
		logger.InfoKV(ctx, "Actuators switched",
			"heater", climate.OnOff(state.Heater), "humidifier", climate.OnOff(state.Humidifier))
	}

	l.state = state
	l.applied = true

	return nil
}

// State returns the last applied state.
func (l *LogOnly) State() climate.ControlState {
	return l.state
}

// Switch is the subset of the gobot relay driver used to drive an output.
type Switch interface {
	On() error
	Off() error
}

// Relays drives the heater and humidifier through two relay outputs.
type Relays struct {
	heater     Switch
	humidifier Switch
	drivers    []*gpio.RelayDriver
	activeLow  bool
}

// NewRelays creates gobot relay drivers for the two pins on a digital writer
// such as the raspi adaptor. activeLow inverts both outputs.
func NewRelays(w gpio.DigitalWriter, heaterPin, humidifierPin string, activeLow bool) *Relays {
	heater := gpio.NewRelayDriver(w, heaterPin)
	humidifier := gpio.NewRelayDriver(w, humidifierPin)

	return &Relays{
		heater:     heater,
		humidifier: humidifier,
		drivers:    []*gpio.RelayDriver{heater, humidifier},
		activeLow:  activeLow,
	}
}

// NewSwitches builds Relays over arbitrary switches, e.g. test doubles.
func NewSwitches(heater, humidifier Switch, activeLow bool) *Relays {
	return &Relays{
		heater:     heater,
		humidifier: humidifier,
		activeLow:  activeLow,
	}
}

// Start starts the relay drivers. The writer must already be connected.
func (r *Relays) Start() error {
	for i, d := range r.drivers {
		if err := d.Start(); err != nil {
			return fmt.Errorf("start relay %d: %w", i, err)
		}
	}

	return nil
}

// Halt switches both outputs off and stops the drivers.
func (r *Relays) Halt(ctx context.Context) error {
	errs := []error{r.Apply(ctx, climate.ControlState{})}

	for _, d := range r.drivers {
		errs = append(errs, d.Halt())
	}

	return errors.Join(errs...)
}

// Apply sets both relays. Both are attempted even if the first one fails.
func (r *Relays) Apply(_ context.Context, state climate.ControlState) error {
	return errors.Join(
		r.set(r.heater, state.Heater),
		r.set(r.humidifier, state.Humidifier),
	)
}

// set switches one relay honouring the active-low wiring.
func (r *Relays) set(s Switch, on bool) error {
	if on != r.activeLow {
		return s.On()
	}

	return s.Off()
}
