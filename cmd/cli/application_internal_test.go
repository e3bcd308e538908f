package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testConfigurationFileNameConstant = "config.yaml"
	testConfigurationContentConstant  = "common:\n  log_level: warn\n  log_format: console\ntools:\n  sync:\n    version: \"2.6\"\n    workspace: /srv/sync\n"
	testSyncCommandUseConstant        = "sync"
)

func TestNewApplicationRegistersSyncCommand(t *testing.T) {
	application := NewApplication()

	commandNames := make([]string, 0)
	for _, registeredCommand := range application.rootCommand.Commands() {
		commandNames = append(commandNames, registeredCommand.Name())
	}

	require.Contains(t, commandNames, testSyncCommandUseConstant)
}

func TestInitializeConfigurationAppliesEmbeddedDefaults(t *testing.T) {
	application := NewApplication()

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.NoError(t, initializationError)

	require.Equal(t, "info", application.configuration.Common.LogLevel)
	require.Equal(t, "structured", application.configuration.Common.LogFormat)
	require.Equal(t, "2.4", application.configuration.Tools.Sync.Version)
	require.Equal(t, "aws-tensorflow", application.configuration.Tools.Sync.Repository)
	require.Equal(t, "google", application.configuration.Tools.Sync.UpstreamRemote)
	require.False(t, application.humanReadableLoggingEnabled())
}

func TestInitializeConfigurationLoadsConfigurationFile(t *testing.T) {
	temporaryDirectory := t.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, testConfigurationFileNameConstant)
	require.NoError(t, os.WriteFile(configurationPath, []byte(testConfigurationContentConstant), 0o600))

	application := NewApplication()
	application.configurationFilePath = configurationPath

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.NoError(t, initializationError)

	require.Equal(t, "warn", application.configuration.Common.LogLevel)
	require.Equal(t, "2.6", application.configuration.Tools.Sync.Version)
	require.Equal(t, "/srv/sync", application.configuration.Tools.Sync.Workspace)
	require.Equal(t, configurationPath, application.configurationMetadata.ConfigFileUsed)
	require.True(t, application.humanReadableLoggingEnabled())
}

func TestInitializeConfigurationHonorsFlagOverrides(t *testing.T) {
	application := NewApplication()
	rootCommand := application.rootCommand

	require.NoError(t, rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, "debug"))
	require.NoError(t, rootCommand.PersistentFlags().Set(logFormatFlagNameConstant, "console"))

	initializationError := application.initializeConfiguration(rootCommand)
	require.NoError(t, initializationError)

	require.Equal(t, "debug", application.configuration.Common.LogLevel)
	require.Equal(t, "console", application.configuration.Common.LogFormat)
	require.True(t, application.humanReadableLoggingEnabled())
}

func TestInitializeConfigurationAttachesConfigurationFileContext(t *testing.T) {
	temporaryDirectory := t.TempDir()
	configurationPath := filepath.Join(temporaryDirectory, testConfigurationFileNameConstant)
	require.NoError(t, os.WriteFile(configurationPath, []byte(testConfigurationContentConstant), 0o600))

	application := NewApplication()
	application.configurationFilePath = configurationPath

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.NoError(t, initializationError)

	contextPath, pathAvailable := application.commandContextAccessor.ConfigurationFilePath(application.rootCommand.Context())
	require.True(t, pathAvailable)
	require.Equal(t, configurationPath, contextPath)
}

func TestInitializeConfigurationRejectsUnknownLogLevel(t *testing.T) {
	application := NewApplication()
	rootCommand := application.rootCommand

	require.NoError(t, rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, "verbose"))

	initializationError := application.initializeConfiguration(rootCommand)
	require.Error(t, initializationError)
	require.Contains(t, initializationError.Error(), "unsupported log level")
}

func TestSyncLoggerInstanceToleratesMissingLogger(t *testing.T) {
	application := &Application{}
	require.NoError(t, application.syncLoggerInstance(nil))
}
