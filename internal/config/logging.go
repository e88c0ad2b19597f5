package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/oshokin/clockrobustus/internal/apperr"
	"github.com/oshokin/clockrobustus/internal/logger"
)

// logSettings is the part of Config read before anything else is loaded.
type logSettings struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// ApplyLogLevel sets the global log level from override, falling back to
// CLOCKROBUSTUS_LOG_LEVEL.
func ApplyLogLevel(override string) error {
	name := override
	if name == "" {
		var settings logSettings
		if err := envconfig.Process(EnvPrefix, &settings); err != nil {
			return apperr.Wrap(apperr.ErrConfig, "process environment", err)
		}

		name = settings.LogLevel
	}

	level, ok := logger.ParseLogLevel(name)
	if !ok {
		return apperr.Wrap(apperr.ErrConfig, "log level", fmt.Errorf("unknown level %q", name))
	}

	logger.SetLevel(level)

	return nil
}
