package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/greenhouse-controller/internal/config"
	"github.com/oshokin/greenhouse-controller/internal/service/controller"
	"github.com/oshokin/greenhouse-controller/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// simulate forces the simulated sensor and log-only actuators.
	simulate bool
	// logLevel overrides the configured log level.
	logLevel string
	// period overrides the configured update period.
	period time.Duration
	// force skips the single-instance check.
	force bool

	// rootCmd represents the base command for running the control loop.
	rootCmd = &cobra.Command{
		Use:   "greenhouse-controller",
		Short: "Run the greenhouse control loop.",
		Long: `Samples temperature, humidity and pressure at a fixed period, switches the heater
and humidifier against the stored setpoints, raises alarms outside the configured limits,
appends every reading to the data log and shows the state on the console and LED matrix.

Setpoints are read from the setpoints file once at startup. When the file is missing
or holds no temperature, defaults of 25.0 C and 55.0 % are written to it.
The loop stops on SIGINT or SIGTERM after the running cycle completes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &controller.Options{
				ConfigPath: configPath,
				Simulate:   simulate,
				LogLevel:   logLevel,
				Period:     period,
				Force:      force,
				Output:     cmd.OutOrStdout(),
			}

			return controller.Run(ctx, options)
		},
	}
)

// Execute runs the greenhouse-controller CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.AddCommand(serialCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().BoolVar(&simulate, "simulate", false, "use the simulated sensor and log-only actuators")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.Flags().DurationVar(&period, "period", 0, "update period override, e.g. 2s")
	rootCmd.Flags().BoolVar(&force, "force", false, "start even if another controller is running")
}
