// Package releasesync keeps a vendor fork's release branch in sync with the
// corresponding upstream open-source release branch.
//
// The service clones the fork, merges the upstream branch on a dedicated sync
// branch, classifies the merge output, and opens a CodeCommit pull request
// when new changes arrived. Branch derivation and merge classification are
// pure functions so the decision logic stays testable without any git state.
package releasesync
