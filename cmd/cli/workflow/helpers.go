package workflow

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/temirov/codeaudit/internal/utils"
)

// ResolveConfigurationPath prefers the positional argument and falls back to the
// configuration file loaded by the root command, whose workflow section then supplies the steps.
func ResolveConfigurationPath(command *cobra.Command, arguments []string) string {
	if len(arguments) > 0 {
		if trimmed := strings.TrimSpace(arguments[0]); len(trimmed) > 0 {
			return trimmed
		}
	}
	if command == nil {
		return ""
	}
	configurationFilePath, available := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context())
	if !available {
		return ""
	}
	return configurationFilePath
}

func displayCommandHelp(command *cobra.Command) error {
	if command == nil {
		return nil
	}
	return command.Help()
}
