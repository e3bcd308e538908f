package sync

import "strings"

const (
	defaultReleaseVersionConstant     = "2.4"
	defaultRepositoryNameConstant     = "aws-tensorflow"
	defaultForkURLConstant            = "codecommit::us-west-2://aws-tensorflow"
	defaultUpstreamRemoteNameConstant = "google"
	defaultUpstreamURLConstant        = "https://github.com/tensorflow/tensorflow.git"
	defaultPushRemoteNameConstant     = "origin"
	defaultWorkspaceConstant          = "."

	versionConfigKeySuffixConstant     = ".version"
	repositoryConfigKeySuffixConstant  = ".repository"
	forkURLConfigKeySuffixConstant     = ".fork_url"
	upstreamRemoteKeySuffixConstant    = ".upstream_remote"
	upstreamURLConfigKeySuffixConstant = ".upstream_url"
	pushRemoteConfigKeySuffixConstant  = ".push_remote"
	workspaceConfigKeySuffixConstant   = ".workspace"
)

// CommandConfiguration captures configuration values for the sync command.
type CommandConfiguration struct {
	Version        string `mapstructure:"version"`
	Repository     string `mapstructure:"repository"`
	ForkURL        string `mapstructure:"fork_url"`
	UpstreamRemote string `mapstructure:"upstream_remote"`
	UpstreamURL    string `mapstructure:"upstream_url"`
	PushRemote     string `mapstructure:"push_remote"`
	Workspace      string `mapstructure:"workspace"`
}

// DefaultCommandConfiguration provides the default sync command settings.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Version:        defaultReleaseVersionConstant,
		Repository:     defaultRepositoryNameConstant,
		ForkURL:        defaultForkURLConstant,
		UpstreamRemote: defaultUpstreamRemoteNameConstant,
		UpstreamURL:    defaultUpstreamURLConstant,
		PushRemote:     defaultPushRemoteNameConstant,
		Workspace:      defaultWorkspaceConstant,
	}
}

// DefaultConfigurationValues exposes sync defaults keyed beneath the provided prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		prefix + versionConfigKeySuffixConstant:     defaults.Version,
		prefix + repositoryConfigKeySuffixConstant:  defaults.Repository,
		prefix + forkURLConfigKeySuffixConstant:     defaults.ForkURL,
		prefix + upstreamRemoteKeySuffixConstant:    defaults.UpstreamRemote,
		prefix + upstreamURLConfigKeySuffixConstant: defaults.UpstreamURL,
		prefix + pushRemoteConfigKeySuffixConstant:  defaults.PushRemote,
		prefix + workspaceConfigKeySuffixConstant:   defaults.Workspace,
	}
}

// Sanitize normalizes configuration values, backfilling defaults for empty fields.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := CommandConfiguration{
		Version:        fallbackWhenBlank(configuration.Version, defaults.Version),
		Repository:     fallbackWhenBlank(configuration.Repository, defaults.Repository),
		ForkURL:        fallbackWhenBlank(configuration.ForkURL, defaults.ForkURL),
		UpstreamRemote: fallbackWhenBlank(configuration.UpstreamRemote, defaults.UpstreamRemote),
		UpstreamURL:    fallbackWhenBlank(configuration.UpstreamURL, defaults.UpstreamURL),
		PushRemote:     fallbackWhenBlank(configuration.PushRemote, defaults.PushRemote),
		Workspace:      fallbackWhenBlank(configuration.Workspace, defaults.Workspace),
	}
	return sanitized
}

func fallbackWhenBlank(candidate string, fallback string) string {
	trimmed := strings.TrimSpace(candidate)
	if len(trimmed) == 0 {
		return fallback
	}
	return trimmed
}
