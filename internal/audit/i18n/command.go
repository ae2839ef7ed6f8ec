package i18n

import (
	"github.com/spf13/cobra"

	"github.com/temirov/codeaudit/internal/audit"
	"github.com/temirov/codeaudit/internal/ui"
)

const (
	commandShortDescriptionConstant = "Inventory $t( translation calls by location"
	commandLongDescriptionConstant  = "i18n-usage lists every line calling $t( grouped into services, components and other locations, and collects the distinct literal translation keys used across the tree."
	commandExampleConstant          = "codeaudit i18n-usage --root src --exclude-dir node_modules"
)

// CommandBuilder assembles the i18n-usage cobra command.
type CommandBuilder struct {
	LoggerProvider        audit.LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	Discoverer            audit.SourceDiscoverer
	FileSystem            audit.FileSystem
	ColorEnabledProvider  func() bool
}

// Build constructs the i18n-usage command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     OperationName,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.NoArgs,
		RunE:    builder.run,
	}

	audit.BindScanFlags(command, DefaultCommandConfiguration().Scan)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	configuration.Scan = audit.ApplyScanFlags(command, configuration.Scan)

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
