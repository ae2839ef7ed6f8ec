package nullability

import (
	"github.com/spf13/cobra"

	"github.com/temirov/codeaudit/internal/audit"
	"github.com/temirov/codeaudit/internal/ui"
)

const (
	commandShortDescriptionConstant = "Flag undefined assignments in typed insert/update payloads"
	commandLongDescriptionConstant  = "optional-null scans TablesInsert<'table'> and TablesUpdate<'table'> object literals and reports every line inside them that mentions undefined, where nullable columns expect an explicit null."
	commandExampleConstant          = "codeaudit optional-null --root src --sarif docs/audit/optional-null.sarif"
	sarifFlagNameConstant           = "sarif"
	sarifFlagUsageConstant          = "Also write a SARIF 2.1.0 log to this path"
)

// CommandBuilder assembles the optional-null cobra command.
type CommandBuilder struct {
	LoggerProvider        audit.LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	Discoverer            audit.SourceDiscoverer
	FileSystem            audit.FileSystem
	ColorEnabledProvider  func() bool
}

// Build constructs the optional-null command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     OperationName,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.NoArgs,
		RunE:    builder.run,
	}

	defaults := DefaultCommandConfiguration()
	audit.BindScanFlags(command, defaults.Scan)
	command.Flags().String(sarifFlagNameConstant, defaults.SARIFOutput, sarifFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	configuration.Scan = audit.ApplyScanFlags(command, configuration.Scan)
	if command.Flags().Changed(sarifFlagNameConstant) {
		configuration.SARIFOutput, _ = command.Flags().GetString(sarifFlagNameConstant)
	}

	service := NewService(ServiceDependencies{
		Discoverer: builder.Discoverer,
		FileSystem: builder.FileSystem,
		Logger:     audit.ResolveLogger(builder.LoggerProvider),
	})

	result, runError := service.Run(command.Context(), configuration)
	if runError != nil {
		return runError
	}

	return ui.NewSummaryPrinter(command.OutOrStdout(), builder.colorEnabled()).PrintResult(result)
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
