package tables

import (
	"github.com/spf13/cobra"

	"github.com/temirov/codeaudit/internal/audit"
	"github.com/temirov/codeaudit/internal/ui"
	flagutils "github.com/temirov/codeaudit/internal/utils/flags"
)

const (
	commandShortDescriptionConstant = "List the generated table types referenced in the tree"
	commandLongDescriptionConstant  = "table-types collects every table named in Tables<'name'> references and writes the distinct names with their reference counts, or a flat sorted list with --format text."
	commandExampleConstant          = "codeaudit table-types --format text --output tmp_tables.txt"
	formatFlagNameConstant          = "format"
	formatFlagDescriptionConstant   = "Report format"
)

// CommandBuilder assembles the table-types cobra command.
type CommandBuilder struct {
	LoggerProvider        audit.LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	Discoverer            audit.SourceDiscoverer
	FileSystem            audit.FileSystem
	ColorEnabledProvider  func() bool
}

// Build constructs the table-types command.
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
	command.Flags().String(
		formatFlagNameConstant,
		defaults.Format,
		flagutils.FormatChoiceUsage(defaults.Format, FormatChoices(), formatFlagDescriptionConstant),
	)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	configuration.Scan = audit.ApplyScanFlags(command, configuration.Scan)
	if command.Flags().Changed(formatFlagNameConstant) {
		configuration.Format, _ = command.Flags().GetString(formatFlagNameConstant)
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

	colorEnabled := builder.ColorEnabledProvider != nil && builder.ColorEnabledProvider()
	return ui.NewSummaryPrinter(command.OutOrStdout(), colorEnabled).PrintResult(result)
}
