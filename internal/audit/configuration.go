package audit

import (
	"strings"

	pathutils "github.com/temirov/codeaudit/internal/utils/path"
)

const (
	extensionPrefixConstant = "."

	// RootConfigurationKey names the scan root configuration field.
	RootConfigurationKey = "root"
	// OutputConfigurationKey names the report output configuration field.
	OutputConfigurationKey = "output"
	// ExtensionsConfigurationKey names the extension allow-list configuration field.
	ExtensionsConfigurationKey = "extensions"
	// ExcludedDirectoriesConfigurationKey names the excluded directory configuration field.
	ExcludedDirectoriesConfigurationKey = "exclude_dirs"
	// RespectGitIgnoreConfigurationKey names the gitignore toggle configuration field.
	RespectGitIgnoreConfigurationKey = "respect_gitignore"
)

// ScanConfiguration describes which files an audit reads and where its report goes.
type ScanConfiguration struct {
	Root                string   `mapstructure:"root"`
	Output              string   `mapstructure:"output"`
	Extensions          []string `mapstructure:"extensions"`
	ExcludedDirectories []string `mapstructure:"exclude_dirs"`
	RespectGitIgnore    bool     `mapstructure:"respect_gitignore"`
}

// Sanitize trims values, expands home shortcuts and falls back to defaults for empty fields.
func (configuration ScanConfiguration) Sanitize(defaults ScanConfiguration) ScanConfiguration {
	homeExpander := pathutils.NewHomeExpander()
	sanitized := configuration

	sanitized.Root = homeExpander.Expand(strings.TrimSpace(configuration.Root))
	if len(sanitized.Root) == 0 {
		sanitized.Root = defaults.Root
	}

	sanitized.Output = homeExpander.Expand(strings.TrimSpace(configuration.Output))
	if len(sanitized.Output) == 0 {
		sanitized.Output = defaults.Output
	}

	sanitized.Extensions = sanitizeExtensions(configuration.Extensions)
	if len(sanitized.Extensions) == 0 {
		sanitized.Extensions = sanitizeExtensions(defaults.Extensions)
	}

	sanitized.ExcludedDirectories = sanitizeNames(configuration.ExcludedDirectories)

	return sanitized
}

// DefaultConfigurationValues flattens a scan configuration into viper defaults under prefix.
func (configuration ScanConfiguration) DefaultConfigurationValues(prefix string) map[string]any {
	return map[string]any{
		prefixedKey(prefix, RootConfigurationKey):                configuration.Root,
		prefixedKey(prefix, OutputConfigurationKey):              configuration.Output,
		prefixedKey(prefix, ExtensionsConfigurationKey):          append([]string{}, configuration.Extensions...),
		prefixedKey(prefix, ExcludedDirectoriesConfigurationKey): append([]string{}, configuration.ExcludedDirectories...),
		prefixedKey(prefix, RespectGitIgnoreConfigurationKey):    configuration.RespectGitIgnore,
	}
}

func prefixedKey(prefix string, key string) string {
	trimmedPrefix := strings.TrimSpace(prefix)
	if len(trimmedPrefix) == 0 {
		return key
	}
	return trimmedPrefix + "." + key
}

func sanitizeExtensions(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, candidate := range raw {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) == 0 {
			continue
		}
		if !strings.HasPrefix(trimmed, extensionPrefixConstant) {
			trimmed = extensionPrefixConstant + trimmed
		}
		if _, duplicate := seen[trimmed]; duplicate {
			continue
		}
		seen[trimmed] = struct{}{}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}

func sanitizeNames(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for _, candidate := range raw {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}
