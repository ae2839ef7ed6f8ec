package workflow

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/codeaudit/internal/audit"
	flagutils "github.com/temirov/codeaudit/internal/utils/flags"
	"github.com/temirov/codeaudit/internal/workflow"
)

const (
	commandUseConstant                       = "workflow [workflow]"
	commandShortDescriptionConstant          = "Run a sequence of audits from a workflow file"
	commandLongDescriptionConstant           = "workflow runs the optional-null, i18n-usage and table-types audits listed in a YAML or JSON file, in order, stopping at the first failure. Without an argument the steps come from the workflow section of the loaded configuration file."
	commandExampleConstant                   = "codeaudit workflow audits.yaml --dry-run"
	configurationPathRequiredMessageConstant = "workflow configuration path required; provide a positional argument or --config flag"
	loadConfigurationErrorTemplateConstant   = "unable to load workflow configuration: %w"
	buildOperationsErrorTemplateConstant     = "unable to build workflow operations: %w"
)

// CommandBuilder assembles the workflow command.
type CommandBuilder struct {
	LoggerProvider        audit.LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	Discoverer            audit.SourceDiscoverer
	FileSystem            audit.FileSystem
	ColorEnabledProvider  func() bool
}

// Build constructs the workflow command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
	}

	flagutils.BindDryRunFlag(command, DefaultCommandConfiguration().DryRun)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configurationPath := ResolveConfigurationPath(command, arguments)
	if len(configurationPath) == 0 {
		if helpError := displayCommandHelp(command); helpError != nil {
			return helpError
		}
		return errors.New(configurationPathRequiredMessageConstant)
	}

	workflowConfiguration, configurationError := workflow.LoadConfiguration(configurationPath)
	if configurationError != nil {
		return fmt.Errorf(loadConfigurationErrorTemplateConstant, configurationError)
	}

	operations, operationsError := workflow.BuildOperations(workflowConfiguration)
	if operationsError != nil {
		return fmt.Errorf(buildOperationsErrorTemplateConstant, operationsError)
	}

	executor := workflow.NewExecutor(operations, workflow.Dependencies{
		Logger:       audit.ResolveLogger(builder.LoggerProvider),
		Discoverer:   builder.Discoverer,
		FileSystem:   builder.FileSystem,
		Output:       command.OutOrStdout(),
		ColorEnabled: builder.colorEnabled(),
	})

	runtimeOptions := workflow.RuntimeOptions{
		DryRun: flagutils.ResolveDryRun(command, builder.resolveConfiguration().DryRun),
	}

	_, executionError := executor.Execute(command.Context(), runtimeOptions)
	return executionError
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) colorEnabled() bool {
	if builder.ColorEnabledProvider == nil {
		return false
	}
	return builder.ColorEnabledProvider()
}
