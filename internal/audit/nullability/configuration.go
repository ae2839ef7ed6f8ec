package nullability

import (
	"strings"

	"github.com/temirov/codeaudit/internal/audit"
	pathutils "github.com/temirov/codeaudit/internal/utils/path"
)

const (
	defaultRootConstant         = "src"
	defaultOutputConstant       = "docs/audit/optional-null-mismatches.md"
	sarifOutputConfigurationKey = "sarif_output"
	configurationKeySeparator   = "."
)

// CommandConfiguration captures persistent settings for the optional-null audit.
type CommandConfiguration struct {
	Scan        audit.ScanConfiguration `mapstructure:",squash"`
	SARIFOutput string                  `mapstructure:"sarif_output"`
}

// DefaultCommandConfiguration returns baseline configuration values for the optional-null audit.
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
	defaults := DefaultCommandConfiguration()
	values := defaults.Scan.DefaultConfigurationValues(prefix)
	values[prefix+configurationKeySeparator+sarifOutputConfigurationKey] = defaults.SARIFOutput
	return values
}

// Sanitize trims values and restores defaults for empty scan fields.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Scan = configuration.Scan.Sanitize(DefaultCommandConfiguration().Scan)
	sanitized.SARIFOutput = pathutils.NewHomeExpander().Expand(strings.TrimSpace(configuration.SARIFOutput))
	return sanitized
}
