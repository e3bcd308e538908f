package sync

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/relsync/internal/releasesync"
	"github.com/temirov/relsync/internal/utils"
)

const (
	commandUseConstant               = "sync"
	commandShortDescriptionConstant  = "Merge the upstream release branch into the vendor fork"
	commandLongDescriptionConstant   = "sync clones the vendor fork, merges the matching upstream release branch onto a dedicated sync branch, and opens a pull request when new commits arrived."
	versionFlagNameConstant          = "version"
	versionFlagDescriptionConstant   = "Release version to synchronize (for example 2.4)"
	repositoryFlagNameConstant       = "repository"
	repositoryFlagDescription        = "Name of the fork repository"
	forkURLFlagNameConstant          = "fork-url"
	forkURLFlagDescriptionConstant   = "Clone URL for the vendor fork"
	upstreamRemoteFlagNameConstant   = "upstream-remote"
	upstreamRemoteFlagDescription    = "Name assigned to the upstream remote"
	upstreamURLFlagNameConstant      = "upstream-url"
	upstreamURLFlagDescription       = "URL of the upstream repository"
	pushRemoteFlagNameConstant       = "push-remote"
	pushRemoteFlagDescription        = "Remote receiving the sync branch"
	workspaceFlagNameConstant        = "workspace"
	workspaceFlagDescriptionConstant = "Directory the fork is cloned into"
	syncFailedTemplateConstant       = "release sync failed: %w"
	upToDateSummaryTemplateConstant  = "Branch %s is already up to date with %s.\n"
	pullRequestSummaryTemplate       = "Opened pull request %s merging %s into %s.\n"
	pushedSummaryTemplateConstant    = "Pushed %s; pull request was not created.\n"
	logFieldVersionConstant          = "version"
	logFieldOutcomeConstant          = "outcome"
	logFieldConfigFileConstant       = "config_file"
	syncCompletedMessageConstant     = "release sync completed"
	configurationSourceMessage       = "sync configuration source"
)

// CommandBuilder assembles the sync command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  releasesync.GitExecutor
	PullRequestCreator           releasesync.PullRequestCreator
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the sync command.
func (builder *CommandBuilder) Build() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	defaults := DefaultCommandConfiguration()
	command.Flags().String(versionFlagNameConstant, defaults.Version, versionFlagDescriptionConstant)
	command.Flags().String(repositoryFlagNameConstant, defaults.Repository, repositoryFlagDescription)
	command.Flags().String(forkURLFlagNameConstant, defaults.ForkURL, forkURLFlagDescriptionConstant)
	command.Flags().String(upstreamRemoteFlagNameConstant, defaults.UpstreamRemote, upstreamRemoteFlagDescription)
	command.Flags().String(upstreamURLFlagNameConstant, defaults.UpstreamURL, upstreamURLFlagDescription)
	command.Flags().String(pushRemoteFlagNameConstant, defaults.PushRemote, pushRemoteFlagDescription)
	command.Flags().String(workspaceFlagNameConstant, defaults.Workspace, workspaceFlagDescriptionConstant)

	return command
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	commandConfiguration := builder.resolveConfiguration()
	options := builder.resolveOptions(command, commandConfiguration)

	logger := resolveLogger(builder.LoggerProvider)

	contextAccessor := utils.NewCommandContextAccessor()
	if configurationFilePath, configurationFilePathAvailable := contextAccessor.ConfigurationFilePath(command.Context()); configurationFilePathAvailable && len(configurationFilePath) > 0 {
		logger.Debug(configurationSourceMessage, zap.String(logFieldConfigFileConstant, configurationFilePath))
	}

	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	gitExecutor, executorError := releasesync.ResolveGitExecutor(builder.GitExecutor, logger, humanReadableLogging)
	if executorError != nil {
		return executorError
	}

	pullRequestCreator, creatorError := releasesync.ResolvePullRequestCreator(builder.PullRequestCreator, logger, humanReadableLogging)
	if creatorError != nil {
		return creatorError
	}

	service, serviceError := releasesync.NewService(releasesync.ServiceDependencies{
		Logger:             logger,
		GitExecutor:        gitExecutor,
		PullRequestCreator: pullRequestCreator,
	})
	if serviceError != nil {
		return serviceError
	}

	result, syncError := service.Sync(command.Context(), options)
	if syncError != nil {
		return fmt.Errorf(syncFailedTemplateConstant, syncError)
	}

	logger.Info(syncCompletedMessageConstant,
		zap.String(logFieldVersionConstant, options.Version),
		zap.String(logFieldOutcomeConstant, string(result.Outcome)),
	)

	switch {
	case result.Outcome == releasesync.MergeOutcomeUpToDate:
		fmt.Fprintf(command.OutOrStdout(), upToDateSummaryTemplateConstant, result.Branches.Target, result.Branches.Upstream)
	case result.PullRequestCreated:
		fmt.Fprintf(command.OutOrStdout(), pullRequestSummaryTemplate, result.PullRequest.Identifier, result.Branches.Sync, result.Branches.Target)
	default:
		fmt.Fprintf(command.OutOrStdout(), pushedSummaryTemplateConstant, result.Branches.Sync)
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveOptions(command *cobra.Command, configuration CommandConfiguration) releasesync.Options {
	options := releasesync.Options{
		Version:            configuration.Version,
		RepositoryName:     configuration.Repository,
		ForkURL:            configuration.ForkURL,
		UpstreamRemoteName: configuration.UpstreamRemote,
		UpstreamURL:        configuration.UpstreamURL,
		PushRemoteName:     configuration.PushRemote,
		WorkspaceDirectory: configuration.Workspace,
	}

	applyChangedFlag(command, versionFlagNameConstant, &options.Version)
	applyChangedFlag(command, repositoryFlagNameConstant, &options.RepositoryName)
	applyChangedFlag(command, forkURLFlagNameConstant, &options.ForkURL)
	applyChangedFlag(command, upstreamRemoteFlagNameConstant, &options.UpstreamRemoteName)
	applyChangedFlag(command, upstreamURLFlagNameConstant, &options.UpstreamURL)
	applyChangedFlag(command, pushRemoteFlagNameConstant, &options.PushRemoteName)
	applyChangedFlag(command, workspaceFlagNameConstant, &options.WorkspaceDirectory)

	return options
}

func applyChangedFlag(command *cobra.Command, flagName string, target *string) {
	if command == nil || !command.Flags().Changed(flagName) {
		return
	}
	if flagValue, flagError := command.Flags().GetString(flagName); flagError == nil {
		*target = flagValue
	}
}
