package utils

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

type commandContextKey string

const configurationFilePathContextKey commandContextKey = "configuration_file_path"

// CommandContextAccessor shares values resolved by the root command with its subcommands.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath returns a child of parentContext carrying the configuration file in use.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKey, strings.TrimSpace(configurationFilePath))
}

// ConfigurationFilePath reports the configuration file in use; false when none was loaded.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, available := executionContext.Value(configurationFilePathContextKey).(string)
	if !available || len(configurationFilePath) == 0 {
		return "", false
	}
	return configurationFilePath, true
}

// AttachConfigurationFilePath stores the configuration file path on command and its root.
func (accessor CommandContextAccessor) AttachConfigurationFilePath(command *cobra.Command, configurationFilePath string) {
	if command == nil {
		return
	}
	updatedContext := accessor.WithConfigurationFilePath(command.Context(), configurationFilePath)
	command.SetContext(updatedContext)
	if rootCommand := command.Root(); rootCommand != nil && rootCommand != command {
		rootCommand.SetContext(updatedContext)
	}
}
