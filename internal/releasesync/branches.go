package releasesync

import (
	"fmt"
	"strings"
)

const (
	targetBranchTemplateConstant   = "r%s_vendor"
	upstreamBranchTemplateConstant = "r%s"
	syncBranchTemplateConstant     = "r%s_vendor_sync"
)

// BranchSet holds the three branch names derived from a release version.
type BranchSet struct {
	// Target is the downstream vendor release branch being kept in sync.
	Target string
	// Upstream is the corresponding branch in the upstream open-source repository.
	Upstream string
	// Sync is the branch created to hold the merge result and serve as the pull request source.
	Sync string
}

// DeriveBranchSet computes the vendor, upstream, and sync branch names for a release version.
func DeriveBranchSet(version string) BranchSet {
	trimmedVersion := strings.TrimSpace(version)
	return BranchSet{
		Target:   fmt.Sprintf(targetBranchTemplateConstant, trimmedVersion),
		Upstream: fmt.Sprintf(upstreamBranchTemplateConstant, trimmedVersion),
		Sync:     fmt.Sprintf(syncBranchTemplateConstant, trimmedVersion),
	}
}
