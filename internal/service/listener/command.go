package listener

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/clockrobustus/internal/config"
	"github.com/oshokin/clockrobustus/internal/logger"
	"github.com/oshokin/clockrobustus/internal/transport/broadcast"
)

// Options controls the clock-listener process.
type Options struct {
	// Endpoint overrides the broadcast endpoint built from the environment.
	Endpoint string
	// Format is json or yaml.
	Format string
	// AlarmsOnly drops clock events from the output.
	AlarmsOnly bool
	// Output receives the events; stdout when nil.
	Output io.Writer
}

// Run subscribes to the broadcast and prints events until ctx is canceled.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "clock-listener")

	if opts == nil {
		opts = new(Options)
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	printer, err := NewPrinter(out, opts.Format, opts.AlarmsOnly)
	if err != nil {
		return err
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		settings, loadErr := config.Load()
		if loadErr != nil {
			return fmt.Errorf("load settings: %w", loadErr)
		}

		endpoint = settings.QueueEndpoint()
	}

	sub, err := broadcast.Dial(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("dial broadcast: %w", err)
	}

	// Closing the socket on cancellation unblocks Receive.
	stop := context.AfterFunc(ctx, func() {
		_ = sub.Close()
	})
	defer stop()

	logger.InfoKV(ctx, "Listening", "endpoint", endpoint, "format", printer.format)

	if err = Listen(ctx, sub, printer); err != nil {
		_ = sub.Close()

		return err
	}

	return nil
}
