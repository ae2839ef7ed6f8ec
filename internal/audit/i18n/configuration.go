package i18n

import "github.com/temirov/codeaudit/internal/audit"

const (
	defaultRootConstant   = "src"
	defaultOutputConstant = "docs/audit/i18n-usage.md"
)

// CommandConfiguration captures persistent settings for the i18n-usage audit.
type CommandConfiguration struct {
	Scan audit.ScanConfiguration `mapstructure:",squash"`
}

// DefaultCommandConfiguration returns baseline configuration values for the i18n-usage audit.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Scan: audit.ScanConfiguration{
			Root:       defaultRootConstant,
			Output:     defaultOutputConstant,
			Extensions: []string{".ts", ".tsx", ".vue"},
		},
	}
}

// DefaultConfigurationValues exposes the defaults as viper keys below prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	return DefaultCommandConfiguration().Scan.DefaultConfigurationValues(prefix)
}

// Sanitize trims values and restores defaults for empty scan fields.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Scan = configuration.Scan.Sanitize(DefaultCommandConfiguration().Scan)
	return sanitized
}
