package releasesync

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/relsync/internal/codecommit"
	"github.com/temirov/relsync/internal/execshell"
)

const (
	gitCloneSubcommandConstant           = "clone"
	gitCheckoutSubcommandConstant        = "checkout"
	gitCreateBranchFlagConstant          = "-b"
	gitRemoteSubcommandConstant          = "remote"
	gitRemoteAddSubcommandConstant       = "add"
	gitPullSubcommandConstant            = "pull"
	gitCommitFlagConstant                = "--commit"
	gitStatusSubcommandConstant          = "status"
	gitPushSubcommandConstant            = "push"
	gitSetUpstreamFlagConstant           = "--set-upstream"
	pullRequestTitleTemplateConstant     = "TF%s git sync"
	pullRequestBodyTemplateConstant      = "Sync tf %s with vanilla tf branch"
	pullRequestRequestTokenConstant      = "request_token"
	executorNotConfiguredMessageConstant = "release sync service requires a git executor"
	creatorNotConfiguredMessageConstant  = "release sync service requires a pull request creator"
	versionRequiredMessageConstant       = "release version is required"
	repositoryRequiredMessageConstant    = "repository name is required"
	forkURLRequiredMessageConstant       = "fork clone URL is required"
	upstreamURLRequiredMessageConstant   = "upstream repository URL is required"
	stepFailedMessageConstant            = "sync step failed, continuing"
	mergeCaptureFailedMessageConstant    = "merge output capture failed, classifying captured text as-is"
	upToDateMessageConstant              = "vendor branch already up to date"
	pushFailedMessageConstant            = "sync branch push failed"
	pullRequestFailedMessageConstant     = "pull request creation failed"
	pullRequestCreatedMessageConstant    = "pull request created"
	logFieldStepConstant                 = "step"
	logFieldBranchConstant               = "branch"
	logFieldOutcomeConstant              = "outcome"
	logFieldPullRequestConstant          = "pull_request_id"
	logFieldErrorConstant                = "error"
	stepNameCloneConstant                = "clone"
	stepNameCheckoutConstant             = "checkout_target"
	stepNameSyncBranchConstant           = "create_sync_branch"
	stepNameRemoteAddConstant            = "add_upstream_remote"
	stepNameStatusConstant               = "status"
)

var (
	// ErrGitExecutorNotConfigured indicates the service was constructed without a git executor.
	ErrGitExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
	// ErrPullRequestCreatorNotConfigured indicates the service was constructed without a pull request creator.
	ErrPullRequestCreatorNotConfigured = errors.New(creatorNotConfiguredMessageConstant)
	// ErrVersionRequired indicates the sync options lacked a release version.
	ErrVersionRequired = errors.New(versionRequiredMessageConstant)
	// ErrRepositoryRequired indicates the sync options lacked a repository name.
	ErrRepositoryRequired = errors.New(repositoryRequiredMessageConstant)
	// ErrForkURLRequired indicates the sync options lacked the fork clone URL.
	ErrForkURLRequired = errors.New(forkURLRequiredMessageConstant)
	// ErrUpstreamURLRequired indicates the sync options lacked the upstream repository URL.
	ErrUpstreamURLRequired = errors.New(upstreamURLRequiredMessageConstant)
)

// GitExecutor exposes the subset of shell execution used by the sync service.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// PullRequestCreator opens pull requests on the hosting service.
type PullRequestCreator interface {
	CreatePullRequest(executionContext context.Context, options codecommit.CreatePullRequestOptions) (codecommit.PullRequest, error)
}

// ServiceDependencies aggregates the collaborators required by the sync service.
type ServiceDependencies struct {
	Logger             *zap.Logger
	GitExecutor        GitExecutor
	PullRequestCreator PullRequestCreator
}

// Options configures a single sync run.
type Options struct {
	Version            string
	RepositoryName     string
	ForkURL            string
	UpstreamRemoteName string
	UpstreamURL        string
	PushRemoteName     string
	WorkspaceDirectory string
}

// Result reports the observable outcome of a sync run.
type Result struct {
	Branches           BranchSet
	Outcome            MergeOutcome
	PullRequest        codecommit.PullRequest
	PullRequestCreated bool
}

// Service drives the vendor release branch sync sequence.
type Service struct {
	logger             *zap.Logger
	gitExecutor        GitExecutor
	pullRequestCreator PullRequestCreator
}

// NewService constructs a sync service after validating its dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.GitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if dependencies.PullRequestCreator == nil {
		return nil, ErrPullRequestCreatorNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		logger:             logger,
		gitExecutor:        dependencies.GitExecutor,
		pullRequestCreator: dependencies.PullRequestCreator,
	}, nil
}

// Sync clones the fork, merges the upstream release branch, and opens a pull request when changes arrived.
//
// Individual git step failures are logged and the sequence continues, matching
// the behavior of the automation this service replaces.
func (service *Service) Sync(executionContext context.Context, options Options) (Result, error) {
	if validationError := validateOptions(options); validationError != nil {
		return Result{}, validationError
	}

	branches := DeriveBranchSet(options.Version)
	repositoryPath := filepath.Join(options.WorkspaceDirectory, options.RepositoryName)

	service.runStep(executionContext, stepNameCloneConstant, execshell.CommandDetails{
		Arguments:        []string{gitCloneSubcommandConstant, options.ForkURL},
		WorkingDirectory: options.WorkspaceDirectory,
	})

	service.runStep(executionContext, stepNameCheckoutConstant, execshell.CommandDetails{
		Arguments:        []string{gitCheckoutSubcommandConstant, branches.Target},
		WorkingDirectory: repositoryPath,
	})

	service.runStep(executionContext, stepNameSyncBranchConstant, execshell.CommandDetails{
		Arguments:        []string{gitCheckoutSubcommandConstant, gitCreateBranchFlagConstant, branches.Sync},
		WorkingDirectory: repositoryPath,
	})

	service.runStep(executionContext, stepNameRemoteAddConstant, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitRemoteAddSubcommandConstant, options.UpstreamRemoteName, options.UpstreamURL},
		WorkingDirectory: repositoryPath,
	})

	mergeResult, mergeError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitPullSubcommandConstant, gitCommitFlagConstant, options.UpstreamRemoteName, branches.Upstream},
		WorkingDirectory: repositoryPath,
	})
	if mergeError != nil {
		service.logger.Warn(mergeCaptureFailedMessageConstant, zap.String(logFieldErrorConstant, mergeError.Error()))
	}

	service.runStep(executionContext, stepNameStatusConstant, execshell.CommandDetails{
		Arguments:        []string{gitStatusSubcommandConstant},
		WorkingDirectory: repositoryPath,
	})

	outcome := ClassifyMergeOutput(mergeResult.StandardOutput)
	result := Result{Branches: branches, Outcome: outcome}

	if outcome == MergeOutcomeUpToDate {
		service.logger.Info(upToDateMessageConstant,
			zap.String(logFieldBranchConstant, branches.Target),
			zap.String(logFieldOutcomeConstant, string(outcome)),
		)
		return result, nil
	}

	if _, pushError := service.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitPushSubcommandConstant, gitSetUpstreamFlagConstant, options.PushRemoteName, branches.Sync},
		WorkingDirectory: repositoryPath,
	}); pushError != nil {
		service.logger.Warn(pushFailedMessageConstant,
			zap.String(logFieldBranchConstant, branches.Sync),
			zap.String(logFieldErrorConstant, pushError.Error()),
		)
	}

	pullRequest, pullRequestError := service.pullRequestCreator.CreatePullRequest(executionContext, codecommit.CreatePullRequestOptions{
		RepositoryName:     options.RepositoryName,
		Title:              fmt.Sprintf(pullRequestTitleTemplateConstant, options.Version),
		Description:        fmt.Sprintf(pullRequestBodyTemplateConstant, options.Version),
		SourceBranch:       branches.Sync,
		DestinationBranch:  branches.Target,
		ClientRequestToken: pullRequestRequestTokenConstant,
	})
	if pullRequestError != nil {
		service.logger.Warn(pullRequestFailedMessageConstant,
			zap.String(logFieldBranchConstant, branches.Sync),
			zap.String(logFieldErrorConstant, pullRequestError.Error()),
		)
		return result, nil
	}

	result.PullRequest = pullRequest
	result.PullRequestCreated = true

	service.logger.Info(pullRequestCreatedMessageConstant,
		zap.String(logFieldPullRequestConstant, pullRequest.Identifier),
		zap.String(logFieldBranchConstant, branches.Sync),
	)

	return result, nil
}

func (service *Service) runStep(executionContext context.Context, stepName string, details execshell.CommandDetails) {
	if _, stepError := service.gitExecutor.ExecuteGit(executionContext, details); stepError != nil {
		service.logger.Warn(stepFailedMessageConstant,
			zap.String(logFieldStepConstant, stepName),
			zap.String(logFieldErrorConstant, stepError.Error()),
		)
	}
}

func validateOptions(options Options) error {
	if len(strings.TrimSpace(options.Version)) == 0 {
		return ErrVersionRequired
	}
	if len(strings.TrimSpace(options.RepositoryName)) == 0 {
		return ErrRepositoryRequired
	}
	if len(strings.TrimSpace(options.ForkURL)) == 0 {
		return ErrForkURLRequired
	}
	if len(strings.TrimSpace(options.UpstreamURL)) == 0 {
		return ErrUpstreamURLRequired
	}
	return nil
}
