package tables

import (
	"fmt"
	"strings"

	"github.com/temirov/codeaudit/internal/audit"
)

const (
	defaultRootConstant       = "src"
	defaultOutputConstant     = "docs/audit/table-types.md"
	formatConfigurationKey    = "format"
	configurationKeySeparator = "."
	unsupportedFormatTemplate = "unsupported table inventory format %q"
)

// Format selects how the inventory is rendered.
type Format string

// Supported formats.
const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// FormatChoices lists the accepted format values in display order.
func FormatChoices() []string {
	return []string{string(FormatMarkdown), string(FormatText)}
}

// CommandConfiguration captures persistent settings for the table-types audit.
type CommandConfiguration struct {
	Scan   audit.ScanConfiguration `mapstructure:",squash"`
	Format string                  `mapstructure:"format"`
}

// DefaultCommandConfiguration returns baseline configuration values for the table-types audit.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Scan: audit.ScanConfiguration{
			Root:       defaultRootConstant,
			Output:     defaultOutputConstant,
			Extensions: []string{".ts"},
		},
		Format: string(FormatMarkdown),
	}
}

// DefaultConfigurationValues exposes the defaults as viper keys below prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	values := defaults.Scan.DefaultConfigurationValues(prefix)
	values[prefix+configurationKeySeparator+formatConfigurationKey] = defaults.Format
	return values
}

// Sanitize trims values and restores defaults for empty fields.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Scan = configuration.Scan.Sanitize(DefaultCommandConfiguration().Scan)
	sanitized.Format = strings.ToLower(strings.TrimSpace(configuration.Format))
	if len(sanitized.Format) == 0 {
		sanitized.Format = string(FormatMarkdown)
	}
	return sanitized
}

// ParseFormat validates a configured format value.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatMarkdown:
		return FormatMarkdown, nil
	case FormatText:
		return FormatText, nil
	default:
		return "", fmt.Errorf(unsupportedFormatTemplate, value)
	}
}
