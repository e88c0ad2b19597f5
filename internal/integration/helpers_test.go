package integration

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/clockrobustus/internal/service/common"
	"github.com/oshokin/clockrobustus/internal/service/daemon"
)

// testDaemon is a clockd instance running inside the test process.
type testDaemon struct {
	apiAddress   string
	endpoint     string
	databasePath string
	done         chan error
	cancel       context.CancelFunc
}

// reservePort returns an address on a free TCP port and closes it.
func reservePort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}

// startDaemon runs daemon.Run on free ports and a temporary database.
// The daemon is stopped and its exit error checked on cleanup.
func startDaemon(t *testing.T, tick time.Duration) *testDaemon {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	d := &testDaemon{
		apiAddress:   reservePort(t),
		endpoint:     "tcp://" + reservePort(t),
		databasePath: filepath.Join(t.TempDir(), "clockrobustus", "dbase.sqlite"),
		done:         make(chan error, 1),
		cancel:       cancel,
	}

	go func() {
		d.done <- daemon.Run(ctx, &daemon.Options{
			DatabasePath: d.databasePath,
			APIAddress:   d.apiAddress,
			Endpoint:     d.endpoint,
			Tick:         tick,
		})
	}()

	t.Cleanup(func() {
		cancel()

		select {
		case err := <-d.done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("daemon did not stop")
		}
	})

	return d
}

// dialDaemon connects an API client and waits until the daemon answers.
func dialDaemon(t *testing.T, d *testDaemon) *common.Client {
	t.Helper()

	c, err := common.Dial(context.Background(), d.apiAddress, common.WithCallTimeout(time.Second))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	require.Eventually(t, func() bool {
		_, listErr := c.ListAlarms(context.Background(), nil)

		return listErr == nil
	}, 5*time.Second, 50*time.Millisecond)

	return c
}
