package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/clockrobustus/internal/apperr"
	"github.com/oshokin/clockrobustus/internal/logger"
)

// TestApplyLogLevel checks the flag, environment and error paths.
func TestApplyLogLevel(t *testing.T) {
	clearEnv(t)

	previous := logger.Level()
	t.Cleanup(func() { logger.SetLevel(previous) })

	require.NoError(t, ApplyLogLevel("debug"))
	require.Equal(t, zapcore.DebugLevel, logger.Level())

	t.Setenv(EnvPrefix+"_LOG_LEVEL", "warning")
	require.NoError(t, ApplyLogLevel(""))
	require.Equal(t, zapcore.WarnLevel, logger.Level())

	err := ApplyLogLevel("loud")
	require.ErrorIs(t, err, apperr.ErrConfig)
	require.Equal(t, zapcore.WarnLevel, logger.Level())
}
