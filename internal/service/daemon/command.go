package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jmhodges/clock"
	"google.golang.org/grpc"

	api "github.com/oshokin/clockrobustus/internal/api/grpc/alarm"
	"github.com/oshokin/clockrobustus/internal/apperr"
	"github.com/oshokin/clockrobustus/internal/config"
	"github.com/oshokin/clockrobustus/internal/logger"
	"github.com/oshokin/clockrobustus/internal/repository/alarms"
	"github.com/oshokin/clockrobustus/internal/transport/broadcast"
	"github.com/oshokin/clockrobustus/internal/version"
)

// Options overrides environment settings of the clockd process.
type Options struct {
	// DatabasePath overrides CLOCKROBUSTUS_DATABASE_PATH.
	DatabasePath string
	// APIAddress overrides CLOCKROBUSTUS_API_ADDR.
	APIAddress string
	// Endpoint overrides the broadcast endpoint built from host and port.
	Endpoint string
	// Tick overrides CLOCKROBUSTUS_TICK_DURATION_MS when positive.
	Tick time.Duration
	// Clock replaces the wall clock, used by tests.
	Clock clock.Clock
}

// Run starts the daemon and blocks until ctx is canceled.
// Configuration, storage and transport failures at startup are fatal.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "clockd")

	if opts == nil {
		opts = new(Options)
	}

	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	applyOverrides(settings, opts)

	store, err := alarms.Open(ctx, settings.DatabasePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.ErrorKV(ctx, "Failed to close store", "error", closeErr)
		}
	}()

	if err = store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("prepare store: %w", err)
	}

	endpoint := settings.QueueEndpoint()
	if opts.Endpoint != "" {
		endpoint = opts.Endpoint
	}

	// The socket outlives cancellation so the last tick can finish; it is closed below.
	pub, err := broadcast.Bind(context.WithoutCancel(ctx), endpoint)
	if err != nil {
		return fmt.Errorf("bind broadcast: %w", err)
	}

	defer func() {
		if closeErr := pub.Close(); closeErr != nil {
			logger.DebugKV(ctx, "Broadcast socket closed with error", "error", closeErr)
		}
	}()

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", settings.APIAddress)
	if err != nil {
		return apperr.Wrap(apperr.ErrTransport, "listen on "+settings.APIAddress, err)
	}

	grpcServer := grpc.NewServer()
	api.RegisterAlarmServiceServer(grpcServer, api.NewServer(newService(store)))

	logger.InfoKV(ctx, "Daemon started",
		"version", version.Short(),
		"endpoint", endpoint,
		"api_address", lis.Addr().String(),
		"database", settings.DatabasePath,
		"tick", settings.TickDuration(),
	)

	serveErr := make(chan error, 1)

	go func() {
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			serveErr <- err
		}

		close(serveErr)
	}()

	NewPublisher(store, pub, opts.Clock, settings.TickDuration()).Run(ctx)

	logger.Info(ctx, "Shutting down gRPC server")
	grpcServer.GracefulStop()

	if err = <-serveErr; err != nil {
		return apperr.Wrap(apperr.ErrTransport, "serve gRPC", err)
	}

	logger.Info(ctx, "Daemon stopped")

	return nil
}

func applyOverrides(settings *config.Config, opts *Options) {
	if opts.DatabasePath != "" {
		settings.DatabasePath = opts.DatabasePath
	}

	if opts.APIAddress != "" {
		settings.APIAddress = opts.APIAddress
	}

	if opts.Tick > 0 {
		settings.TickDurationMS = uint64(opts.Tick / time.Millisecond)
	}
}
