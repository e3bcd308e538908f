package execshell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessageForPullIncludesRemoteAndBranch(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"pull", "--commit", "google", "r2.4"},
			WorkingDirectory: "/workspace/fork",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Pulling r2.4 from google in /workspace/fork", message)
}

func TestBuildStartedMessageForBranchCreatingCheckout(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"checkout", "-b", "r2.4_vendor_sync"},
			WorkingDirectory: "/workspace/fork",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Creating and switching to branch r2.4_vendor_sync in /workspace/fork", message)
}

func TestBuildStartedMessageForUpstreamPush(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"push", "--set-upstream", "origin", "r2.4_vendor_sync"},
			WorkingDirectory: "/workspace/fork",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Pushing r2.4_vendor_sync to origin from /workspace/fork with upstream tracking", message)
}

func TestBuildStartedMessageForCodeCommitPullRequestUsesTitle(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandAWS,
		Details: CommandDetails{
			Arguments: []string{"codecommit", "create-pull-request", "--title", "TF2.4 git sync"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, `Creating pull request "TF2.4 git sync"`, message)
}
