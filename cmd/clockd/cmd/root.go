package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/clockrobustus/internal/config"
	"github.com/oshokin/clockrobustus/internal/service/daemon"
	"github.com/oshokin/clockrobustus/internal/version"
)

var (
	// logLevel overrides CLOCKROBUSTUS_LOG_LEVEL.
	logLevel string
	// options collects the flag overrides of the environment settings.
	options daemon.Options

	// rootCmd represents the base command for running the daemon.
	rootCmd = &cobra.Command{
		Use:   "clockd",
		Short: "Broadcast clock readings and ringing alarms.",
		Long: `Starts the clock daemon.

Every tick the daemon reads the alarm table, publishes every alarm that must
ring now and then publishes the current clock reading on the broadcast
endpoint (CLOCKROBUSTUS_INTERNAL_QUEUE_HOST / CLOCKROBUSTUS_INTERNAL_QUEUE_PORT).
The alarm management API listens on CLOCKROBUSTUS_API_ADDR.
SIGINT or SIGTERM stops the daemon after the current tick.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.ApplyLogLevel(logLevel)
		},
		RunE: func(*cobra.Command, []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return daemon.Run(ctx, &options)
		},
	}
)

// Execute runs the clockd CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&options.DatabasePath, "database", "d", "", "path to the SQLite database (default: user config dir)")
	flags.StringVarP(&options.APIAddress, "api-address", "a", "", "listen address of the alarm management API")
	flags.StringVarP(&options.Endpoint, "endpoint", "e", "", "broadcast endpoint, e.g. tcp://127.0.0.1:5555")
	flags.DurationVarP(&options.Tick, "tick", "t", 0, "publisher cadence, e.g. 500ms")

	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level: debug, info, warn, error")
}
