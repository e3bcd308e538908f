// Package sync exposes the Cobra command that merges upstream release
// branches into the vendor fork and opens review pull requests.
package sync
