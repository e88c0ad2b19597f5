package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oshokin/clockrobustus/internal/service/ctl"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stored alarm.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withController(cmd, func(ctx context.Context, c *ctl.Controller) error {
				return c.List(ctx)
			})
		},
	}
}

func newSetCommand() *cobra.Command {
	var (
		id   int64
		days []string
	)

	cmd := &cobra.Command{
		Use:   "set HH:MM[:SS]",
		Short: "Create an alarm, or update the one given by --id.",
		Example: `  clockctl set 07:30 --days monday,tuesday,wednesday,thursday,friday
  clockctl set 09:00:30 --days all --id 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctl.ParseAlarm(id, args[0], days)
			if err != nil {
				return err
			}

			return withController(cmd, func(ctx context.Context, c *ctl.Controller) error {
				return c.Set(ctx, a)
			})
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "id of the alarm to update; a new alarm is created when omitted")
	cmd.Flags().StringSliceVar(&days, "days", nil, "active weekdays, comma separated, or all")

	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete the alarm with the given id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			return withController(cmd, func(ctx context.Context, c *ctl.Controller) error {
				return c.Delete(ctx, id)
			})
		},
	}
}

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write every stored alarm to a YAML file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, c *ctl.Controller) error {
				return c.Export(ctx, args[0])
			})
		},
	}
}

func newImportCommand() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Save every alarm of a YAML file as a new alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withController(cmd, func(ctx context.Context, c *ctl.Controller) error {
				return c.Import(ctx, args[0], replace)
			})
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "delete the stored alarms first")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether clockd is running on this machine.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pids, err := ctl.Status(nil)
			if err != nil {
				return err
			}

			return ctl.PrintStatus(cmd.OutOrStdout(), pids)
		},
	}
}
