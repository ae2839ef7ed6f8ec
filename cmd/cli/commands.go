package cli

import (
	"github.com/spf13/cobra"

	workflowcmd "github.com/temirov/codeaudit/cmd/cli/workflow"
	"github.com/temirov/codeaudit/internal/audit/i18n"
	"github.com/temirov/codeaudit/internal/audit/nullability"
	"github.com/temirov/codeaudit/internal/audit/tables"
)

type commandBuilder interface {
	Build() (*cobra.Command, error)
}

func (application *Application) registerCommands() {
	builders := []commandBuilder{
		&nullability.CommandBuilder{
			LoggerProvider:        application.currentLogger,
			ConfigurationProvider: func() nullability.CommandConfiguration { return application.configuration.Tools.OptionalNull },
			ColorEnabledProvider:  application.colorEnabled,
		},
		&i18n.CommandBuilder{
			LoggerProvider:        application.currentLogger,
			ConfigurationProvider: func() i18n.CommandConfiguration { return application.configuration.Tools.I18nUsage },
			ColorEnabledProvider:  application.colorEnabled,
		},
		&tables.CommandBuilder{
			LoggerProvider:        application.currentLogger,
			ConfigurationProvider: func() tables.CommandConfiguration { return application.configuration.Tools.TableTypes },
			ColorEnabledProvider:  application.colorEnabled,
		},
		&workflowcmd.CommandBuilder{
			LoggerProvider:        application.currentLogger,
			ConfigurationProvider: func() workflowcmd.CommandConfiguration { return application.configuration.Tools.Workflow },
			ColorEnabledProvider:  application.colorEnabled,
		},
	}

	for _, builder := range builders {
		command, buildError := builder.Build()
		if buildError != nil {
			continue
		}
		application.root.AddCommand(command)
	}
}
