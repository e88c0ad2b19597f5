package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/oshokin/clockrobustus/internal/apperr"
)

// Config holds the settings shared by the daemon, the listener and the control tool.
type Config struct {
	// QueueHost is the host of the broadcast endpoint.
	QueueHost string `envconfig:"INTERNAL_QUEUE_HOST" default:"127.0.0.1"`
	// QueuePort is the port of the broadcast endpoint.
	QueuePort uint16 `envconfig:"INTERNAL_QUEUE_PORT" default:"5555"`
	// TickDurationMS is the publisher cadence in milliseconds.
	TickDurationMS uint64 `envconfig:"TICK_DURATION_MS" default:"1000"`
	// DatabasePath is the SQLite file holding the alarm table.
	DatabasePath string `envconfig:"DATABASE_PATH"`
	// APIAddress is the gRPC address of the alarm management API.
	APIAddress string `envconfig:"API_ADDR" default:"127.0.0.1:5556"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// Timeout bounds management API calls.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"5s"`
}

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "CLOCKROBUSTUS"

	// DefaultTimeout is the default duration for API calls.
	DefaultTimeout = 5 * time.Second

	// DefaultFilePermissions is the permission for files written by the tools.
	DefaultFilePermissions = 0o600

	// DefaultDirPermissions is the permission for directories created by the tools.
	DefaultDirPermissions = 0o750

	// appDirName is the directory under the user config dir.
	appDirName = "clockrobustus"
	// databaseFilename is the SQLite file name inside appDirName.
	databaseFilename = "dbase.sqlite"
)

var (
	// errQueueHostRequired is returned when the broadcast host is empty.
	errQueueHostRequired = errors.New("queue host must be provided")
	// errAPIAddressRequired is returned when the API address is empty.
	errAPIAddressRequired = errors.New("API address must be provided")
)

// Load reads the environment, fills defaults and validates the result.
// Every failure matches apperr.ErrConfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, apperr.Wrap(apperr.ErrConfig, "process environment", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings and fills the OS-dependent defaults.
func Validate(cfg *Config) error {
	if cfg.QueueHost == "" {
		return apperr.Wrap(apperr.ErrConfig, "validate", errQueueHostRequired)
	}

	if cfg.APIAddress == "" {
		return apperr.Wrap(apperr.ErrConfig, "validate", errAPIAddressRequired)
	}

	if _, _, err := net.SplitHostPort(cfg.APIAddress); err != nil {
		return apperr.Wrap(apperr.ErrConfig, "invalid API address", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.DatabasePath == "" {
		path, err := DefaultDatabasePath()
		if err != nil {
			return apperr.Wrap(apperr.ErrConfig, "default database path", err)
		}

		cfg.DatabasePath = path
	}

	return nil
}

// TickDuration returns the publisher cadence.
func (c *Config) TickDuration() time.Duration {
	return time.Duration(c.TickDurationMS) * time.Millisecond
}

// QueueEndpoint returns the broadcast endpoint as tcp://host:port.
func (c *Config) QueueEndpoint() string {
	return "tcp://" + net.JoinHostPort(c.QueueHost, strconv.Itoa(int(c.QueuePort)))
}

// DefaultDatabasePath returns the per-user database location,
// e.g. ~/.config/clockrobustus/dbase.sqlite on Linux.
func DefaultDatabasePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}

	return filepath.Join(dir, appDirName, databaseFilename), nil
}
