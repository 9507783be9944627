package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/oshokin/greenhouse-controller/internal/actuator"
	"github.com/oshokin/greenhouse-controller/internal/config"
	"github.com/oshokin/greenhouse-controller/internal/display"
	"github.com/oshokin/greenhouse-controller/internal/logger"
	"github.com/oshokin/greenhouse-controller/internal/repository/readings"
	"github.com/oshokin/greenhouse-controller/internal/repository/setpoints"
	"github.com/oshokin/greenhouse-controller/internal/sensor"
	"github.com/oshokin/greenhouse-controller/internal/service/common"
)

// Options controls the controller process.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Simulate forces the simulated sensor and log-only actuators.
	Simulate bool
	// LogLevel overrides the configured log level when set.
	LogLevel string
	// Period overrides the configured update period when positive.
	Period time.Duration
	// Force skips the single-instance check.
	Force bool
	// Output receives console and terminal matrix output; defaults to stdout.
	Output io.Writer
}

// Run initialises the controller and runs the control loop until ctx is canceled.
// Only startup problems are returned.
//
//nolint:cyclop,funlen // Startup wiring is a linear sequence of steps.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "greenhouse-controller")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	applyOptions(cfg, opts)

	if err = logger.SetLevelString(cfg.LogLevel); err != nil {
		return err
	}

	runID := uuid.NewString()
	ctx = logger.WithKV(ctx, "run_id", runID)

	if !opts.Force {
		if err = common.EnsureSingleInstance(); err != nil {
			return err
		}
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	var console *display.Console
	if cfg.Display.Console {
		console = display.NewConsole(output)

		if err = console.Header(common.Serial()); err != nil {
			logger.WarnKV(ctx, "Failed to print header", "error", err)
		}
	}

	targets := ResolveTargets(ctx, setpoints.NewFileRepository(cfg.SetpointsFile))

	deps := Dependencies{
		Log:       buildLog(cfg, runID),
		Setpoints: targets,
		Limits:    cfg.AlarmLimits,
		Displays:  buildDisplays(cfg, console, output),
	}

	if needsBoard(cfg) {
		b, err := openBoard(ctx, cfg)
		if err != nil {
			return fmt.Errorf("open board: %w", err)
		}

		defer func() {
			if err := b.close(context.WithoutCancel(ctx)); err != nil {
				logger.ErrorKV(ctx, "Failed to release board", "error", err)
			}
		}()

		if b.sensor != nil {
			deps.Source = b.sensor
		}

		if b.relays != nil {
			deps.Actuators = b.relays
		}
	}

	if deps.Source == nil {
		seed := cfg.Sensor.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano()) //nolint:gosec // Non-negative wall clock.
		}

		deps.Source = sensor.NewSimulator(seed)
	}

	if deps.Actuators == nil {
		deps.Actuators = actuator.NewLogOnly()
	}

	logger.InfoKV(ctx, "Controller running",
		"period", cfg.UpdatePeriod.String(),
		"sensor", cfg.Sensor.Backend,
		"log_file", cfg.LogFile,
		"setpoints_file", cfg.SetpointsFile,
		"temperature_target", targets.Temperature,
		"humidity_target", targets.Humidity)

	return New(deps).Loop(ctx, cfg.UpdatePeriod)
}

// applyOptions lets command line options override the loaded settings.
func applyOptions(cfg *config.Config, opts *Options) {
	if opts.Simulate {
		cfg.Sensor.Backend = config.BackendSimulated
		cfg.Actuators.Backend = config.BackendLog

		if cfg.Display.Matrix == config.MatrixFramebuffer {
			cfg.Display.Matrix = config.MatrixTerminal
		}
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if opts.Period > 0 {
		cfg.UpdatePeriod = opts.Period
	}
}

// buildLog assembles the reading sinks.
func buildLog(cfg *config.Config, runID string) readings.Log {
	sinks := readings.Multi{readings.NewFileLog(cfg.LogFile)}

	if cfg.ArchiveFile != "" {
		sinks = append(sinks, readings.NewArchive(cfg.ArchiveFile, runID))
	}

	return sinks
}

// buildDisplays assembles the display sinks.
func buildDisplays(cfg *config.Config, console *display.Console, output io.Writer) []display.Sink {
	var sinks []display.Sink

	switch cfg.Display.Matrix {
	case config.MatrixFramebuffer:
		sinks = append(sinks, display.NewPanel(display.NewFramebuffer(cfg.Display.Framebuffer)))
	case config.MatrixTerminal:
		sinks = append(sinks, display.NewPanel(display.NewGrid(output)))
	}

	if console != nil {
		sinks = append(sinks, console)
	}

	return sinks
}
