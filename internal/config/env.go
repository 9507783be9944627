package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvFile is the optional dotenv file read before environment overrides.
const EnvFile = ".env"

// Environment variables overriding file settings.
const (
	EnvUpdatePeriod  = "GREENHOUSE_UPDATE_PERIOD"
	EnvSetpointsFile = "GREENHOUSE_SETPOINTS_FILE"
	EnvLogFile       = "GREENHOUSE_LOG_FILE"
	EnvArchiveFile   = "GREENHOUSE_ARCHIVE_FILE"
	EnvLogLevel      = "GREENHOUSE_LOG_LEVEL"
	EnvSensor        = "GREENHOUSE_SENSOR"
	EnvActuators     = "GREENHOUSE_ACTUATORS"
	EnvMatrix        = "GREENHOUSE_MATRIX"
	EnvConsole       = "GREENHOUSE_CONSOLE"
)

// applyEnv loads .env if present and copies GREENHOUSE_* variables into cfg.
func applyEnv(cfg *Config) error {
	// Variables already set in the process environment win over .env.
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", EnvFile, err)
	}

	if v, ok := os.LookupEnv(EnvUpdatePeriod); ok {
		period, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvUpdatePeriod, err)
		}

		cfg.UpdatePeriod = period
	}

	if v, ok := os.LookupEnv(EnvConsole); ok {
		console, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvConsole, err)
		}

		cfg.Display.Console = console
	}

	overrides := map[string]*string{
		EnvSetpointsFile: &cfg.SetpointsFile,
		EnvLogFile:       &cfg.LogFile,
		EnvArchiveFile:   &cfg.ArchiveFile,
		EnvLogLevel:      &cfg.LogLevel,
		EnvSensor:        &cfg.Sensor.Backend,
		EnvActuators:     &cfg.Actuators.Backend,
		EnvMatrix:        &cfg.Display.Matrix,
	}

	for key, target := range overrides {
		if v, ok := os.LookupEnv(key); ok {
			*target = v
		}
	}

	return nil
}
