package releasesync

import (
	"go.uber.org/zap"

	"github.com/temirov/relsync/internal/codecommit"
	"github.com/temirov/relsync/internal/execshell"
	"github.com/temirov/relsync/internal/ui"
)

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default.
func ResolveGitExecutor(existing GitExecutor, logger *zap.Logger, humanReadableLogging bool) (GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	shellExecutor, creationError := resolveShellExecutor(logger, humanReadableLogging)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolvePullRequestCreator returns the provided creator or constructs an AWS CLI-backed default.
func ResolvePullRequestCreator(existing PullRequestCreator, logger *zap.Logger, humanReadableLogging bool) (PullRequestCreator, error) {
	if existing != nil {
		return existing, nil
	}

	shellExecutor, creationError := resolveShellExecutor(logger, humanReadableLogging)
	if creationError != nil {
		return nil, creationError
	}
	return codecommit.NewClient(shellExecutor)
}

func resolveShellExecutor(logger *zap.Logger, humanReadableLogging bool) (*execshell.ShellExecutor, error) {
	commandRunner := execshell.NewOSCommandRunner()
	if humanReadableLogging {
		// The console observer renders every lifecycle event, so the structured
		// executor logger is muted to avoid duplicate lines.
		return execshell.NewShellExecutorWithObserver(zap.NewNop(), commandRunner, ui.NewConsoleCommandEventLogger(logger))
	}
	return execshell.NewShellExecutor(logger, commandRunner)
}
