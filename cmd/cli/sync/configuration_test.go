package sync_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	synccmd "github.com/temirov/relsync/cmd/cli/sync"
)

const configurationPrefixConstant = "tools.sync"

func TestDefaultConfigurationValuesUsePrefix(t *testing.T) {
	defaults := synccmd.DefaultConfigurationValues(configurationPrefixConstant)

	require.Equal(t, "2.4", defaults["tools.sync.version"])
	require.Equal(t, "aws-tensorflow", defaults["tools.sync.repository"])
	require.Equal(t, "codecommit::us-west-2://aws-tensorflow", defaults["tools.sync.fork_url"])
	require.Equal(t, "google", defaults["tools.sync.upstream_remote"])
	require.Equal(t, "https://github.com/tensorflow/tensorflow.git", defaults["tools.sync.upstream_url"])
	require.Equal(t, "origin", defaults["tools.sync.push_remote"])
	require.Equal(t, ".", defaults["tools.sync.workspace"])
}

func TestSanitizeBackfillsDefaults(t *testing.T) {
	testCases := []struct {
		name          string
		configuration synccmd.CommandConfiguration
		expected      synccmd.CommandConfiguration
	}{
		{
			name:          "empty_configuration_receives_defaults",
			configuration: synccmd.CommandConfiguration{},
			expected:      synccmd.DefaultCommandConfiguration(),
		},
		{
			name: "whitespace_values_receive_defaults",
			configuration: synccmd.CommandConfiguration{
				Version:   "  ",
				Workspace: "\t",
			},
			expected: synccmd.DefaultCommandConfiguration(),
		},
		{
			name: "populated_values_are_trimmed_and_kept",
			configuration: synccmd.CommandConfiguration{
				Version:        " 2.6 ",
				Repository:     "internal-fork",
				ForkURL:        "https://example.com/internal-fork.git",
				UpstreamRemote: "upstream",
				UpstreamURL:    "https://example.com/upstream.git",
				PushRemote:     "fork",
				Workspace:      "/srv/sync",
			},
			expected: synccmd.CommandConfiguration{
				Version:        "2.6",
				Repository:     "internal-fork",
				ForkURL:        "https://example.com/internal-fork.git",
				UpstreamRemote: "upstream",
				UpstreamURL:    "https://example.com/upstream.git",
				PushRemote:     "fork",
				Workspace:      "/srv/sync",
			},
		},
	}

	for testCaseIndex := range testCases {
		testCase := testCases[testCaseIndex]
		t.Run(testCase.name, func(subtest *testing.T) {
			require.Equal(subtest, testCase.expected, testCase.configuration.Sanitize())
		})
	}
}
