package integration

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/clockrobustus/internal/apperr"
	"github.com/oshokin/clockrobustus/internal/domain/alarm"
	"github.com/oshokin/clockrobustus/internal/domain/clock"
	"github.com/oshokin/clockrobustus/internal/service/daemon"
	"github.com/oshokin/clockrobustus/internal/service/listener"
	"github.com/oshokin/clockrobustus/internal/transport/broadcast"
)

// TestDaemon_APIRoundtrip manages alarms through the real gRPC API and SQLite store.
func TestDaemon_APIRoundtrip(t *testing.T) {
	t.Parallel()

	d := startDaemon(t, 100*time.Millisecond)
	c := dialDaemon(t, d)
	ctx := context.Background()
	actor := &alarm.Actor{Hostname: "test-hostname", Username: "test-user"}

	require.NoError(t, c.UpsertAlarm(ctx, actor, &alarm.Alarm{ActiveDays: alarm.Monday | alarm.Sunday, Hour: 7, Minute: 5}))
	require.NoError(t, c.UpsertAlarm(ctx, actor, &alarm.Alarm{ActiveDays: alarm.Saturday, Hour: 22}))

	alarms, err := c.ListAlarms(ctx, actor)
	require.NoError(t, err)
	require.Len(t, alarms, 2)
	require.Equal(t, alarm.Monday|alarm.Sunday, alarms[0].ActiveDays)
	require.NotNil(t, alarms[0].ID)

	updated := alarms[1]
	updated.Minute = 45
	require.NoError(t, c.UpsertAlarm(ctx, actor, &updated))
	require.NoError(t, c.DeleteAlarm(ctx, actor, &alarms[0]))

	alarms, err = c.ListAlarms(ctx, actor)
	require.NoError(t, err)
	require.Len(t, alarms, 1)
	require.Equal(t, uint8(45), alarms[0].Minute)

	err = c.DeleteAlarm(ctx, actor, &alarm.Alarm{Hour: 1})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	err = c.UpsertAlarm(ctx, actor, &alarm.Alarm{Hour: 99})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = os.Stat(d.databasePath)
	require.NoError(t, err)
}

// TestDaemon_BroadcastReachesListener runs the publisher and a subscriber over loopback.
func TestDaemon_BroadcastReachesListener(t *testing.T) {
	t.Parallel()

	d := startDaemon(t, 50*time.Millisecond)
	c := dialDaemon(t, d)

	// Ring two seconds from now on every day so the test does not depend on the weekday.
	at := time.Now().Add(2 * time.Second).Local()
	require.NoError(t, c.UpsertAlarm(context.Background(), nil, &alarm.Alarm{
		ActiveDays: alarm.AllDays,
		Hour:       uint8(at.Hour()),
		Minute:     uint8(at.Minute()),
		Seconds:    uint8(at.Second()),
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sub, err := broadcast.Dial(ctx, d.endpoint)
	require.NoError(t, err)

	var (
		once      sync.Once
		gotClock  = make(chan clock.Snapshot, 1)
		gotAlarm  = make(chan alarm.Alarm, 1)
		listenErr = make(chan error, 1)
	)

	go func() {
		listenErr <- listener.Listen(ctx, sub, listener.Funcs{
			Alarm: func(_ context.Context, a alarm.Alarm) error {
				select {
				case gotAlarm <- a:
				default:
				}

				return nil
			},
			Clock: func(_ context.Context, s clock.Snapshot) error {
				once.Do(func() { gotClock <- s })

				return nil
			},
		})
	}()

	select {
	case s := <-gotClock:
		require.Less(t, s.Hours, uint8(24))
	case <-ctx.Done():
		t.Fatal("no clock message received")
	}

	select {
	case a := <-gotAlarm:
		require.Equal(t, alarm.AllDays, a.ActiveDays)
		require.Equal(t, uint8(at.Second()), a.Seconds)
	case <-ctx.Done():
		t.Fatal("no alarm message received")
	}

	cancel()
	_ = sub.Close()

	select {
	case err = <-listenErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}
}

// TestDaemon_StartupFailures are fatal and keep their error kind.
func TestDaemon_StartupFailures(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "not-a-directory")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := daemon.Run(context.Background(), &daemon.Options{
		DatabasePath: filepath.Join(blocker, "dbase.sqlite"),
		APIAddress:   reservePort(t),
		Endpoint:     "tcp://" + reservePort(t),
	})
	require.ErrorIs(t, err, apperr.ErrStorage)

	err = daemon.Run(context.Background(), &daemon.Options{
		DatabasePath: filepath.Join(t.TempDir(), "dbase.sqlite"),
		APIAddress:   reservePort(t),
		Endpoint:     "bogus://127.0.0.1:1",
	})
	require.ErrorIs(t, err, apperr.ErrTransport)
}
