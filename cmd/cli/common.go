package cli

import (
	"errors"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/codeaudit/internal/ui"
	"github.com/temirov/codeaudit/internal/utils"
	flagutils "github.com/temirov/codeaudit/internal/utils/flags"
)

const (
	logLevelConfigurationField  = "log_level"
	logFormatConfigurationField = "log_format"
	colorConfigurationField     = "color"
	commonSectionPrefix         = "common."
)

// commonSetting ties a persistent flag to its key below the common section.
type commonSetting struct {
	flagName     string
	field        string
	defaultValue string
	choices      []string
	description  string
	target       func(*ApplicationCommonConfiguration) *string
}

var commonSettings = []commonSetting{
	{
		flagName:     "log-level",
		field:        logLevelConfigurationField,
		defaultValue: string(utils.LogLevelInfo),
		choices:      utils.LogLevelChoices(),
		description:  "Override the configured log level.",
		target:       func(common *ApplicationCommonConfiguration) *string { return &common.LogLevel },
	},
	{
		flagName:     "log-format",
		field:        logFormatConfigurationField,
		defaultValue: string(utils.LogFormatStructured),
		choices:      utils.LogFormatChoices(),
		description:  "Override the configured log format.",
		target:       func(common *ApplicationCommonConfiguration) *string { return &common.LogFormat },
	},
	{
		flagName:     "color",
		field:        colorConfigurationField,
		defaultValue: string(ui.ColorModeAuto),
		choices:      ui.ColorModeChoices(),
		description:  "Colorize console summaries.",
		target:       func(common *ApplicationCommonConfiguration) *string { return &common.Color },
	},
}

func bindCommonFlags(flagSet *pflag.FlagSet) {
	for _, setting := range commonSettings {
		flagSet.String(setting.flagName, "", flagutils.FormatChoiceUsage(setting.defaultValue, setting.choices, setting.description))
	}
}

func commonDefaultValues() map[string]any {
	values := make(map[string]any, len(commonSettings))
	for _, setting := range commonSettings {
		values[commonSectionPrefix+setting.field] = setting.defaultValue
	}
	return values
}

// applyCommonFlagOverrides copies explicitly given persistent flags over the loaded values.
func applyCommonFlagOverrides(command *cobra.Command, common *ApplicationCommonConfiguration) {
	if command == nil || common == nil {
		return
	}
	for _, setting := range commonSettings {
		flag := command.Flags().Lookup(setting.flagName)
		if flag == nil {
			flag = command.Root().PersistentFlags().Lookup(setting.flagName)
		}
		if flag == nil || !flag.Changed {
			continue
		}
		*setting.target(common) = flag.Value.String()
	}
}

func normalizeArguments(arguments []string) []string {
	normalized := flagutils.NormalizeToggleArguments(arguments)
	if normalized == nil {
		return []string{}
	}
	return normalized
}

// syncLogger flushes logger, ignoring the errors stderr and stdout return when they are not syncable.
func syncLogger(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}
	syncError := logger.Sync()
	for _, ignorable := range []syscall.Errno{syscall.ENOTSUP, syscall.EINVAL} {
		if errors.Is(syncError, ignorable) {
			return nil
		}
	}
	return syncError
}
