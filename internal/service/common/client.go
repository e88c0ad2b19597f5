//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	api "github.com/oshokin/clockrobustus/internal/api/grpc/alarm"
	"github.com/oshokin/clockrobustus/internal/config"
	"github.com/oshokin/clockrobustus/internal/domain/alarm"
)

// Client wraps the gRPC AlarmService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the daemon.
	conn *grpc.ClientConn
	// api is the AlarmService client stub.
	api api.AlarmServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
	// dialOptions are appended to the default insecure transport.
	dialOptions []grpc.DialOption
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithDialOptions appends extra gRPC dial options, e.g. an in-memory dialer.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) {
		c.dialOptions = append(c.dialOptions, opts...)
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errAlarmRequired is returned when a mutating call gets no alarm.
	errAlarmRequired = errors.New("alarm must be provided")
)

// Dial establishes a gRPC connection to the daemon's management API.
// Transport is insecure; the API listens on loopback by default.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	client := &Client{
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	dialOptions := append(
		[]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())},
		client.dialOptions...,
	)

	conn, err := grpc.NewClient(address, dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}

	client.conn = conn
	client.api = api.NewAlarmServiceClient(conn)

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// ListAlarms returns every alarm stored by the daemon.
func (c *Client) ListAlarms(ctx context.Context, actor *alarm.Actor) ([]alarm.Alarm, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListAlarms(callCtx, &api.ListAlarmsRequest{RequestingActor: actor})
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}

	return resp.Alarms, nil
}

// UpsertAlarm inserts an alarm without id or updates the one carrying an id.
func (c *Client) UpsertAlarm(ctx context.Context, actor *alarm.Actor, a *alarm.Alarm) error {
	if a == nil {
		return errAlarmRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	_, err := c.api.UpsertAlarm(callCtx, &api.UpsertAlarmRequest{Actor: actor, Alarm: a})
	if err != nil {
		return fmt.Errorf("upsert alarm: %w", err)
	}

	return nil
}

// DeleteAlarm removes a saved alarm.
func (c *Client) DeleteAlarm(ctx context.Context, actor *alarm.Actor, a *alarm.Alarm) error {
	if a == nil {
		return errAlarmRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	_, err := c.api.DeleteAlarm(callCtx, &api.DeleteAlarmRequest{Actor: actor, Alarm: a})
	if err != nil {
		return fmt.Errorf("delete alarm: %w", err)
	}

	return nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
