package controller

import (
	"context"
	"errors"
	"fmt"

	"gobot.io/x/gobot/v2/platforms/raspi"

	"github.com/oshokin/greenhouse-controller/internal/actuator"
	"github.com/oshokin/greenhouse-controller/internal/config"
	"github.com/oshokin/greenhouse-controller/internal/logger"
	"github.com/oshokin/greenhouse-controller/internal/sensor"
)

// board owns the Raspberry Pi adaptor and the drivers attached to it.
// It is constructed once at startup and threaded through the controller.
type board struct {
	adaptor *raspi.Adaptor
	sensor  *sensor.BME280
	relays  *actuator.Relays
}

// needsBoard reports whether the configuration touches real hardware.
func needsBoard(cfg *config.Config) bool {
	return cfg.Sensor.Backend == config.BackendBME280 || cfg.Actuators.Backend == config.BackendRelay
}

// openBoard connects the adaptor and starts the configured drivers.
func openBoard(ctx context.Context, cfg *config.Config) (*board, error) {
	b := &board{adaptor: raspi.NewAdaptor()}

	if err := b.adaptor.Connect(); err != nil {
		return nil, fmt.Errorf("connect raspi adaptor: %w", err)
	}

	if cfg.Sensor.Backend == config.BackendBME280 {
		b.sensor = sensor.NewBME280(b.adaptor)

		if err := b.sensor.Start(); err != nil {
			return nil, errors.Join(err, b.close(ctx))
		}
	}

	if cfg.Actuators.Backend == config.BackendRelay {
		b.relays = actuator.NewRelays(b.adaptor,
			cfg.Actuators.HeaterPin, cfg.Actuators.HumidifierPin, cfg.Actuators.ActiveLow)

		if err := b.relays.Start(); err != nil {
			return nil, errors.Join(err, b.close(ctx))
		}
	}

	logger.InfoKV(ctx, "Board connected",
		"sensor", cfg.Sensor.Backend, "actuators", cfg.Actuators.Backend)

	return b, nil
}

// close switches the relays off, halts the drivers and releases the adaptor.
func (b *board) close(ctx context.Context) error {
	var errs []error

	if b.relays != nil {
		errs = append(errs, b.relays.Halt(ctx))
	}

	if b.sensor != nil {
		errs = append(errs, b.sensor.Halt())
	}

	errs = append(errs, b.adaptor.Finalize())

	return errors.Join(errs...)
}
