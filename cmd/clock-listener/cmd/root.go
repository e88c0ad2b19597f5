package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/clockrobustus/internal/config"
	"github.com/oshokin/clockrobustus/internal/service/listener"
	"github.com/oshokin/clockrobustus/internal/version"
)

var (
	// logLevel overrides CLOCKROBUSTUS_LOG_LEVEL.
	logLevel string
	// options holds the listener flags.
	options listener.Options

	// rootCmd represents the base command for printing broadcast events.
	rootCmd = &cobra.Command{
		Use:   "clock-listener [endpoint]",
		Short: "Print clock readings and alarms published by clockd.",
		Long: `Subscribes to the clockd broadcast and prints every event to stdout,
one JSON object per line or one YAML document per event.

The endpoint defaults to tcp://CLOCKROBUSTUS_INTERNAL_QUEUE_HOST:CLOCKROBUSTUS_INTERNAL_QUEUE_PORT.
A malformed frame stops the listener with a non-zero exit status.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.ApplyLogLevel(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if len(args) > 0 {
				options.Endpoint = args[0]
			}

			options.Output = cmd.OutOrStdout()

			return listener.Run(ctx, &options)
		},
	}
)

// Execute runs the clock-listener CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&options.Format, "format", "f", listener.FormatJSON, "output format: json or yaml")
	flags.BoolVar(&options.AlarmsOnly, "alarms-only", false, "do not print clock readings")

	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level: debug, info, warn, error")
}
