package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/stretchr/testify/require"
)

func TestSentinelsSurviveWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"configuration", apperror.Configuration("GITHUB_TOKEN is not set"), apperror.ErrConfiguration},
		{"not found", apperror.NotFound("user", "octocat"), apperror.ErrNotFound},
		{"upstream", apperror.Upstream("contributions", errors.New("502")), apperror.ErrUpstream},
		{"ignored", apperror.Ignored("product not matching"), apperror.ErrIgnored},
		{"conflict", apperror.Conflict("stats", "octocat"), apperror.ErrConflict},
		{"validation", apperror.ValidationFailed("username", "invalid"), apperror.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			require.ErrorIs(t, wrapped, tt.sentinel)

			var appErr *apperror.AppError
			require.ErrorAs(t, wrapped, &appErr)
		})
	}
}

func TestUpstreamKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperror.Upstream("failed to fetch contribution stats", cause)

	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, apperror.ErrUpstream)
	require.Equal(t, "failed to fetch contribution stats: connection reset", err.Error())
}

func TestNotFoundMessage(t *testing.T) {
	err := apperror.NotFound("user", "ghost")
	require.Equal(t, "user not found with id ghost", err.Error())
	require.NotErrorIs(t, err, apperror.ErrUpstream)
}
