package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	workflowcmd "github.com/temirov/codeaudit/cmd/cli/workflow"
	"github.com/temirov/codeaudit/internal/audit/i18n"
	"github.com/temirov/codeaudit/internal/audit/nullability"
	"github.com/temirov/codeaudit/internal/audit/tables"
	"github.com/temirov/codeaudit/internal/ui"
	"github.com/temirov/codeaudit/internal/utils"
)

const (
	applicationNameConstant             = "codeaudit"
	applicationShortDescriptionConstant = "Static audits for TypeScript and Vue front-end sources"
	applicationLongDescriptionConstant  = "codeaudit scans a front-end source tree and writes Markdown reports: undefined values in typed insert/update payloads, i18n translation usage and the inventory of typed table references."
	configFileFlagNameConstant          = "config"
	configFileFlagUsageConstant         = "Path to a YAML or JSON configuration file; defaults to config.yaml in the working or user configuration directory."
	environmentPrefixConstant           = "CODEAUDIT"
	configurationBaseNameConstant       = "config"
	configurationTypeConstant           = "yaml"
	workingDirectorySearchPathConstant  = "."
	toolsSectionConstant                = "tools"
	optionalNullSectionConstant         = toolsSectionConstant + ".optional_null"
	i18nUsageSectionConstant            = toolsSectionConstant + ".i18n_usage"
	tableTypesSectionConstant           = toolsSectionConstant + ".table_types"
	workflowSectionConstant             = toolsSectionConstant + ".workflow"
	loadConfigurationErrorTemplate      = "unable to load configuration: %w"
	resolveColorModeErrorTemplate       = "unable to resolve color mode: %w"
	createLoggerErrorTemplate           = "unable to create logger: %w"
	flushLoggerErrorTemplate            = "unable to flush logger: %w"
	configurationReadyMessage           = "configuration initialized"
	rootInvokedMessage                  = "no command given"
	configFileLogField                  = "config_file"
	argumentsLogField                   = "arguments"
)

// ApplicationConfiguration mirrors the configuration file layout.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	Tools  ApplicationToolsConfiguration  `mapstructure:"tools"`
}

// ApplicationCommonConfiguration holds settings shared by every command.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Color     string `mapstructure:"color"`
}

// ApplicationToolsConfiguration holds the per-command sections below tools.
type ApplicationToolsConfiguration struct {
	OptionalNull nullability.CommandConfiguration `mapstructure:"optional_null"`
	I18nUsage    i18n.CommandConfiguration        `mapstructure:"i18n_usage"`
	TableTypes   tables.CommandConfiguration      `mapstructure:"table_types"`
	Workflow     workflowcmd.CommandConfiguration `mapstructure:"workflow"`
}

// Application owns the root command and the state resolved before any sub-command runs.
type Application struct {
	root                  *cobra.Command
	loader                *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationFileUsed string
	explicitConfigPath    string
	colorMode             ui.ColorMode
	contextAccessor       utils.CommandContextAccessor
}

// NewApplication builds the root command with every audit registered.
func NewApplication() *Application {
	searchPaths := []string{workingDirectorySearchPathConstant}
	if userDirectory, found := utils.UserConfigurationDirectory(applicationNameConstant); found {
		searchPaths = append(searchPaths, userDirectory)
	}

	loader := utils.NewConfigurationLoader(configurationBaseNameConstant, configurationTypeConstant, environmentPrefixConstant, searchPaths)
	loader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		loader:          loader,
		loggerFactory:   utils.NewLoggerFactory(),
		logger:          zap.NewNop(),
		colorMode:       ui.ColorModeAuto,
		contextAccessor: utils.NewCommandContextAccessor(),
	}

	root := &cobra.Command{
		Use:               applicationNameConstant,
		Short:             applicationShortDescriptionConstant,
		Long:              applicationLongDescriptionConstant,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: application.prepare,
		RunE: func(command *cobra.Command, arguments []string) error {
			application.logger.Debug(rootInvokedMessage, zap.Strings(argumentsLogField, arguments))
			return command.Help()
		},
	}
	root.SetContext(context.Background())
	root.PersistentFlags().StringVar(&application.explicitConfigPath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	bindCommonFlags(root.PersistentFlags())

	application.root = root
	application.registerCommands()

	return application
}

// Execute runs the command hierarchy against the process arguments.
func Execute() error {
	return NewApplication().Execute()
}

// Execute runs the application with os.Args.
func (application *Application) Execute() error {
	return application.ExecuteWithArguments(os.Args[1:])
}

// ExecuteWithArguments runs the application with arguments and flushes the logger afterwards.
func (application *Application) ExecuteWithArguments(arguments []string) error {
	application.root.SetArgs(normalizeArguments(arguments))

	runError := application.root.Execute()
	if flushError := syncLogger(application.logger); flushError != nil && runError == nil {
		return fmt.Errorf(flushLoggerErrorTemplate, flushError)
	}
	return runError
}

func (application *Application) prepare(command *cobra.Command, _ []string) error {
	loaded, loadError := application.loader.LoadConfiguration(application.explicitConfigPath, application.defaultValues(), &application.configuration)
	if loadError != nil {
		return fmt.Errorf(loadConfigurationErrorTemplate, loadError)
	}
	application.configurationFileUsed = loaded.ConfigFileUsed

	applyCommonFlagOverrides(command, &application.configuration.Common)

	colorMode, colorError := ui.ParseColorMode(application.configuration.Common.Color)
	if colorError != nil {
		return fmt.Errorf(resolveColorModeErrorTemplate, colorError)
	}
	application.colorMode = colorMode

	logger, loggerError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerError != nil {
		return fmt.Errorf(createLoggerErrorTemplate, loggerError)
	}
	application.logger = logger

	logger.Info(
		configurationReadyMessage,
		zap.String(logLevelConfigurationField, application.configuration.Common.LogLevel),
		zap.String(logFormatConfigurationField, application.configuration.Common.LogFormat),
		zap.String(colorConfigurationField, string(colorMode)),
		zap.String(configFileLogField, application.configurationFileUsed),
	)

	application.contextAccessor.AttachConfigurationFilePath(command, application.configurationFileUsed)
	return nil
}

func (application *Application) defaultValues() map[string]any {
	values := commonDefaultValues()
	sections := []map[string]any{
		nullability.DefaultConfigurationValues(optionalNullSectionConstant),
		i18n.DefaultConfigurationValues(i18nUsageSectionConstant),
		tables.DefaultConfigurationValues(tableTypesSectionConstant),
		workflowcmd.DefaultConfigurationValues(workflowSectionConstant),
	}
	for _, section := range sections {
		for key, value := range section {
			values[key] = value
		}
	}
	return values
}

func (application *Application) currentLogger() *zap.Logger {
	return application.logger
}

func (application *Application) colorEnabled() bool {
	return ui.ColorEnabled(application.colorMode, application.root.OutOrStdout(), os.LookupEnv)
}
