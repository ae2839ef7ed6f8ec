package workflow

const (
	dryRunConfigurationKeyConstant    = "dry_run"
	configurationKeySeparatorConstant = "."
)

// CommandConfiguration captures configuration values for workflow.
type CommandConfiguration struct {
	DryRun bool `mapstructure:"dry_run"`
}

// DefaultCommandConfiguration provides default workflow command settings.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{DryRun: false}
}

// DefaultConfigurationValues exposes the defaults as viper keys below prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		prefix + configurationKeySeparatorConstant + dryRunConfigurationKeyConstant: defaults.DryRun,
	}
}
