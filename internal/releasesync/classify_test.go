package releasesync_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/relsync/internal/releasesync"
)

func TestClassifyMergeOutput(t *testing.T) {
	testCases := []struct {
		name            string
		mergeOutput     string
		expectedOutcome releasesync.MergeOutcome
	}{
		{
			name:            "up_to_date",
			mergeOutput:     "Already up to date.\n",
			expectedOutcome: releasesync.MergeOutcomeUpToDate,
		},
		{
			name:            "up_to_date_with_surrounding_text",
			mergeOutput:     "From https://github.com/tensorflow/tensorflow\n * branch r2.4 -> FETCH_HEAD\nAlready up to date.\n",
			expectedOutcome: releasesync.MergeOutcomeUpToDate,
		},
		{
			name:            "fast_forward",
			mergeOutput:     "Updating abc123..def456\n Fast-forward\n",
			expectedOutcome: releasesync.MergeOutcomeChangesMerged,
		},
		{
			name:            "empty_output",
			mergeOutput:     "",
			expectedOutcome: releasesync.MergeOutcomeChangesMerged,
		},
		{
			name:            "lowercase_marker_not_matched",
			mergeOutput:     "already up to date.\n",
			expectedOutcome: releasesync.MergeOutcomeChangesMerged,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expectedOutcome, releasesync.ClassifyMergeOutput(testCase.mergeOutput))
		})
	}
}
