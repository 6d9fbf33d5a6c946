package logger_test

import (
	"testing"

	"github.com/Tusharxhub/GitHubWrapped/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"dev", "test", "production"} {
		t.Run(env, func(t *testing.T) {
			logr, err := logger.NewLogger(env, "")
			require.NoError(t, err)
			require.NotNil(t, logr)

			enabled := logr.Core().Enabled(zap.DebugLevel)
			require.Equal(t, env != "production", enabled)
		})
	}
}
