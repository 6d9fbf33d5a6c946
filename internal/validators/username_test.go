package validators_test

import (
	"strings"
	"testing"

	"github.com/Tusharxhub/GitHubWrapped/internal/validators"
	"github.com/stretchr/testify/require"
)

func TestUsernameRequest(t *testing.T) {
	valid := []string{"octocat", "a", "Tusharxhub", "some-user-1", strings.Repeat("a", 39)}
	for _, name := range valid {
		require.NoError(t, validators.NewUsernameRequest(name).Validate(), name)
	}

	invalid := []string{"", "   ", "-lead", "trail-", "has space", "dots.not.allowed", strings.Repeat("a", 40)}
	for _, name := range invalid {
		require.Error(t, validators.NewUsernameRequest(name).Validate(), name)
	}
}

func TestNewUsernameRequestNormalizes(t *testing.T) {
	require.Equal(t, "octocat", validators.NewUsernameRequest("  OctoCat ").Username)
}
