package audit

import (
	"github.com/spf13/cobra"

	flagutils "github.com/temirov/codeaudit/internal/utils/flags"
)

const (
	// RootFlagName selects the directory to scan.
	RootFlagName = "root"
	// OutputFlagName selects the Markdown report path.
	OutputFlagName = "output"
	// ExtensionFlagName selects the file extensions to scan.
	ExtensionFlagName = "extension"
	// ExcludeDirectoryFlagName names directories to skip.
	ExcludeDirectoryFlagName = "exclude-dir"
	// RespectGitIgnoreFlagName toggles .gitignore handling.
	RespectGitIgnoreFlagName = "respect-gitignore"

	rootFlagUsageConstant             = "Directory to scan"
	outputFlagUsageConstant           = "Path of the Markdown report to write"
	extensionFlagUsageConstant        = "File extensions to scan (repeatable)"
	excludeDirectoryFlagUsageConstant = "Directory names to skip (repeatable)"
	respectGitIgnoreFlagUsageConstant = "Skip files ignored by the root .gitignore"
)

// BindScanFlags registers the shared scan flags on command using defaults for help output.
func BindScanFlags(command *cobra.Command, defaults ScanConfiguration) {
	if command == nil {
		return
	}
	flagSet := command.Flags()
	flagSet.String(RootFlagName, defaults.Root, rootFlagUsageConstant)
	flagSet.String(OutputFlagName, defaults.Output, outputFlagUsageConstant)
	flagSet.StringSlice(ExtensionFlagName, defaults.Extensions, extensionFlagUsageConstant)
	flagSet.StringSlice(ExcludeDirectoryFlagName, defaults.ExcludedDirectories, excludeDirectoryFlagUsageConstant)

	var respectGitIgnore bool
	flagutils.AddToggleFlag(flagSet, &respectGitIgnore, RespectGitIgnoreFlagName, defaults.RespectGitIgnore, respectGitIgnoreFlagUsageConstant)
}

// ApplyScanFlags overlays the flags the user changed on top of configuration.
func ApplyScanFlags(command *cobra.Command, configuration ScanConfiguration) ScanConfiguration {
	if command == nil {
		return configuration
	}
	flagSet := command.Flags()
	applied := configuration

	if flagSet.Changed(RootFlagName) {
		applied.Root, _ = flagSet.GetString(RootFlagName)
	}
	if flagSet.Changed(OutputFlagName) {
		applied.Output, _ = flagSet.GetString(OutputFlagName)
	}
	if flagSet.Changed(ExtensionFlagName) {
		applied.Extensions, _ = flagSet.GetStringSlice(ExtensionFlagName)
	}
	if flagSet.Changed(ExcludeDirectoryFlagName) {
		applied.ExcludedDirectories, _ = flagSet.GetStringSlice(ExcludeDirectoryFlagName)
	}
	if flagSet.Changed(RespectGitIgnoreFlagName) {
		applied.RespectGitIgnore, _ = flagSet.GetBool(RespectGitIgnoreFlagName)
	}

	return applied
}
