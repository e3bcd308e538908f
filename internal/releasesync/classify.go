package releasesync

import "strings"

// upToDateOutputMarkerConstant is the literal git prints when a merge brought in nothing new.
const upToDateOutputMarkerConstant = "Already up to date"

// MergeOutcome classifies the captured output of the upstream merge.
type MergeOutcome string

// Merge outcome enumerations.
const (
	// MergeOutcomeUpToDate indicates the vendor branch already contained the upstream changes.
	MergeOutcomeUpToDate MergeOutcome = MergeOutcome("up_to_date")
	// MergeOutcomeChangesMerged indicates the merge brought in new upstream commits.
	MergeOutcomeChangesMerged MergeOutcome = MergeOutcome("changes_merged")
)

// ClassifyMergeOutput maps captured merge output to a MergeOutcome.
//
// Empty or partial output classifies as MergeOutcomeChangesMerged, which keeps
// the push and pull request path reachable when the merge output could not be
// captured.
func ClassifyMergeOutput(mergeOutput string) MergeOutcome {
	if strings.Contains(mergeOutput, upToDateOutputMarkerConstant) {
		return MergeOutcomeUpToDate
	}
	return MergeOutcomeChangesMerged
}
