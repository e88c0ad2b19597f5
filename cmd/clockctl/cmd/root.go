package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/clockrobustus/internal/config"
	"github.com/oshokin/clockrobustus/internal/service/ctl"
	"github.com/oshokin/clockrobustus/internal/version"
)

var (
	// logLevel overrides CLOCKROBUSTUS_LOG_LEVEL.
	logLevel string
	// apiAddress overrides CLOCKROBUSTUS_API_ADDR.
	apiAddress string

	// rootCmd represents the base command for managing alarms.
	rootCmd = &cobra.Command{
		Use:   "clockctl",
		Short: "Manage clockd alarms.",
		Long: `Lists, saves and deletes alarms through the clockd management API,
exports and imports them as YAML and reports whether clockd is running.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.ApplyLogLevel(logLevel)
		},
	}
)

// Execute runs the clockctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withController connects to the daemon and runs fn with a signal-aware context.
func withController(cmd *cobra.Command, fn func(ctx context.Context, c *ctl.Controller) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	controller, closeFn, err := ctl.Connect(ctx, &ctl.Options{
		APIAddress: apiAddress,
		Output:     cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	defer closeFn()

	return fn(ctx, controller)
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&apiAddress, "api-address", "a", "", "address of the clockd management API")

	rootCmd.AddCommand(
		newListCommand(),
		newSetCommand(),
		newDeleteCommand(),
		newExportCommand(),
		newImportCommand(),
		newStatusCommand(),
	)
}
