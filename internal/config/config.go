package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/greenhouse-controller/internal/domain/alarm"
)

// Config holds every setting of the controller process.
type Config struct {
	// UpdatePeriod is the pause between two control cycles.
	UpdatePeriod time.Duration `yaml:"update_period"`
	// SetpointsFile is where the temperature and humidity targets are persisted.
	SetpointsFile string `yaml:"setpoints_file"`
	// LogFile is the append-only text log of readings.
	LogFile string `yaml:"log_file"`
	// ArchiveFile is an optional sqlite database that also receives readings.
	ArchiveFile string `yaml:"archive_file"`
	// LogLevel is the minimum level of process logs.
	LogLevel string `yaml:"log_level"`
	// Sensor selects the measurement backend.
	Sensor Sensor `yaml:"sensor"`
	// Actuators selects how heater and humidifier are driven.
	Actuators Actuators `yaml:"actuators"`
	// Display selects the status outputs.
	Display Display `yaml:"display"`
	// AlarmLimits are the alarm thresholds.
	AlarmLimits alarm.Limits `yaml:"alarm_limits"`
}

// Sensor configures the measurement backend.
type Sensor struct {
	// Backend is BackendSimulated or BackendBME280.
	Backend string `yaml:"backend"`
	// Seed fixes the simulator random source; zero means time based.
	Seed uint64 `yaml:"seed"`
}

// Actuators configures the relay outputs.
type Actuators struct {
	// Backend is BackendLog or BackendRelay.
	Backend string `yaml:"backend"`
	// HeaterPin is the header pin of the heater relay.
	HeaterPin string `yaml:"heater_pin"`
	// HumidifierPin is the header pin of the humidifier relay.
	HumidifierPin string `yaml:"humidifier_pin"`
	// ActiveLow inverts the relay outputs for boards that switch on a low level.
	ActiveLow bool `yaml:"active_low"`
}

// Display configures the status outputs.
type Display struct {
	// Console enables the text status block on stdout.
	Console bool `yaml:"console"`
	// Matrix is MatrixNone, MatrixFramebuffer or MatrixTerminal.
	Matrix string `yaml:"matrix"`
	// Framebuffer is the LED matrix framebuffer device.
	Framebuffer string `yaml:"framebuffer"`
}

// Backend and matrix selectors.
const (
	BackendSimulated = "simulated"
	BackendBME280    = "bme280"
	BackendLog       = "log"
	BackendRelay     = "relay"

	MatrixNone        = "none"
	MatrixFramebuffer = "framebuffer"
	MatrixTerminal    = "terminal"
)

const (
	// DefaultConfigFilename is the default settings file.
	DefaultConfigFilename = "greenhouse-settings.yaml"
	// DefaultSetpointsFilename is the default setpoints file.
	DefaultSetpointsFilename = "setpoints.json"
	// DefaultLogFilename is the default readings log.
	DefaultLogFilename = "ghdata.txt"
	// DefaultUpdatePeriod is the default pause between cycles.
	DefaultUpdatePeriod = 2 * time.Second
	// DefaultFramebuffer is the Sense HAT LED matrix device.
	DefaultFramebuffer = "/dev/fb1"
	// DefaultHeaterPin is the default heater relay pin.
	DefaultHeaterPin = "36"
	// DefaultHumidifierPin is the default humidifier relay pin.
	DefaultHumidifierPin = "18"
	// DefaultFilePermissions is the permission of files written by the controller.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownBackend is returned for an unsupported selector value.
	errUnknownBackend = errors.New("unknown backend")
	// errPinRequired is returned when relays are enabled without pins.
	errPinRequired = errors.New("relay pin must be provided")
)

// Default returns a configuration for a simulated controller.
func Default() *Config {
	cfg := &Config{
		Display: Display{Console: true},
	}

	// Validate only fills defaults here.
	_ = Validate(cfg)

	return cfg
}

// Load reads configuration from the provided path, applies environment
// overrides and validates it. A missing file at the default path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))

	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultConfigFilename:
		// Run with defaults.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("apply environment: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults and checks selector values.
//
//nolint:cyclop // A flat list of defaults reads better than helpers.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.UpdatePeriod <= 0 {
		cfg.UpdatePeriod = DefaultUpdatePeriod
	}

	if cfg.SetpointsFile == "" {
		cfg.SetpointsFile = DefaultSetpointsFilename
	}

	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFilename
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.AlarmLimits.IsZero() {
		cfg.AlarmLimits = alarm.DefaultLimits()
	}

	if err := cfg.AlarmLimits.Validate(); err != nil {
		return fmt.Errorf("invalid alarm limits: %w", err)
	}

	cfg.Sensor.Backend = normalize(cfg.Sensor.Backend, BackendSimulated)
	if cfg.Sensor.Backend != BackendSimulated && cfg.Sensor.Backend != BackendBME280 {
		return fmt.Errorf("sensor %q: %w", cfg.Sensor.Backend, errUnknownBackend)
	}

	cfg.Actuators.Backend = normalize(cfg.Actuators.Backend, BackendLog)

	switch cfg.Actuators.Backend {
	case BackendLog:
	case BackendRelay:
		if cfg.Actuators.HeaterPin == "" || cfg.Actuators.HumidifierPin == "" {
			return errPinRequired
		}
	default:
		return fmt.Errorf("actuators %q: %w", cfg.Actuators.Backend, errUnknownBackend)
	}

	if cfg.Actuators.HeaterPin == "" {
		cfg.Actuators.HeaterPin = DefaultHeaterPin
	}

	if cfg.Actuators.HumidifierPin == "" {
		cfg.Actuators.HumidifierPin = DefaultHumidifierPin
	}

	cfg.Display.Matrix = normalize(cfg.Display.Matrix, MatrixNone)

	switch cfg.Display.Matrix {
	case MatrixNone, MatrixFramebuffer, MatrixTerminal:
	default:
		return fmt.Errorf("matrix %q: %w", cfg.Display.Matrix, errUnknownBackend)
	}

	if cfg.Display.Framebuffer == "" {
		cfg.Display.Framebuffer = DefaultFramebuffer
	}

	return nil
}

// normalize lowercases a selector and substitutes fallback when empty.
func normalize(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}

	return value
}
