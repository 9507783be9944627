package controller

import (
	"context"
	"time"

	"github.com/oshokin/greenhouse-controller/internal/actuator"
	"github.com/oshokin/greenhouse-controller/internal/display"
	"github.com/oshokin/greenhouse-controller/internal/domain/alarm"
	"github.com/oshokin/greenhouse-controller/internal/domain/climate"
	"github.com/oshokin/greenhouse-controller/internal/logger"
	"github.com/oshokin/greenhouse-controller/internal/repository/readings"
	"github.com/oshokin/greenhouse-controller/internal/sensor"
)

// Dependencies are the collaborators of a Controller.
type Dependencies struct {
	// Source supplies readings. It is wrapped in sensor.Fallback.
	Source sensor.Source
	// Log receives every reading; nil disables logging.
	Log readings.Log
	// Actuators apply the control state; nil disables switching.
	Actuators actuator.Driver
	// Displays show every frame.
	Displays []display.Sink
	// Setpoints are the resolved targets.
	Setpoints climate.Setpoints
	// Limits are the alarm thresholds.
	Limits alarm.Limits
	// Clock stamps readings; defaults to time.Now.
	Clock func() time.Time
}

// Controller performs control cycles. It is not safe for concurrent use.
type Controller struct {
	source    sensor.Source
	log       readings.Log
	actuators actuator.Driver
	displays  []display.Sink
	setpoints climate.Setpoints
	limits    alarm.Limits
	clock     func() time.Time
	cycles    uint64
}

// New creates a controller. Setpoints and limits are fixed for its lifetime.
func New(deps Dependencies) *Controller {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Controller{
		source:    sensor.NewFallback(deps.Source),
		log:       deps.Log,
		actuators: deps.Actuators,
		displays:  deps.Displays,
		setpoints: deps.Setpoints,
		limits:    deps.Limits,
		clock:     clock,
	}
}

// Cycles returns the number of completed cycles.
func (c *Controller) Cycles() uint64 {
	return c.cycles
}

// Cycle runs sample, log, decide, alarm, actuate and display once and returns
// the frame it produced. Downstream failures are logged and do not skip steps.
func (c *Controller) Cycle(ctx context.Context) display.Frame {
	// Fallback never fails.
	reading, _ := sensor.Read(ctx, c.source, c.clock())

	if c.log != nil {
		if err := c.log.Append(ctx, reading); err != nil {
			logger.ErrorKV(ctx, "Failed to log reading", "error", err)
		}
	}

	frame := display.Frame{
		Reading:   reading,
		Setpoints: c.setpoints,
		Control:   climate.Decide(c.setpoints, reading),
		Alarms:    alarm.Evaluate(c.limits, reading),
	}

	if c.actuators != nil {
		if err := c.actuators.Apply(ctx, frame.Control); err != nil {
			logger.ErrorKV(ctx, "Failed to switch actuators", "error", err)
		}
	}

	for _, sink := range c.displays {
		if err := sink.Show(ctx, frame); err != nil {
			logger.WarnKV(ctx, "Display update failed", "error", err)
		}
	}

	c.cycles++

	logger.DebugKV(ctx, "Cycle complete",
		"cycle", c.cycles,
		"reading", reading.String(),
		"heater", frame.Control.Heater,
		"humidifier", frame.Control.Humidifier,
		"alarms", len(frame.Alarms.Active()))

	return frame
}

// Loop runs cycles until ctx is canceled, pausing period after each one.
// Cancellation is observed only between cycles; a started cycle always completes.
func (c *Controller) Loop(ctx context.Context, period time.Duration) error {
	// A started cycle must not see the cancellation.
	cycleCtx := context.WithoutCancel(ctx)

	for {
		if ctx.Err() != nil {
			return nil
		}

		c.Cycle(cycleCtx)

		timer := time.NewTimer(period)

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.InfoKV(ctx, "Control loop stopped", "cycles", c.cycles)

			return nil
		case <-timer.C:
		}
	}
}
