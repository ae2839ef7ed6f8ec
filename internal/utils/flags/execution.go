// Package flags provides shared flag helpers for the codeaudit commands.
package flags

import "github.com/spf13/cobra"

const (
	// DryRunFlagName exposes the shared dry-run flag name.
	DryRunFlagName = "dry-run"
	// DryRunFlagUsage describes the shared dry-run flag purpose.
	DryRunFlagUsage = "Print the artifacts each step would write without scanning"
)

// BindDryRunFlag attaches the dry-run toggle to command.
func BindDryRunFlag(command *cobra.Command, defaultValue bool) {
	if command == nil {
		return
	}
	var dryRun bool
	AddToggleFlag(command.Flags(), &dryRun, DryRunFlagName, defaultValue, DryRunFlagUsage)
}

// ResolveDryRun returns the dry-run flag value when the user set it and configured otherwise.
func ResolveDryRun(command *cobra.Command, configured bool) bool {
	if command == nil || !command.Flags().Changed(DryRunFlagName) {
		return configured
	}
	dryRun, lookupError := command.Flags().GetBool(DryRunFlagName)
	if lookupError != nil {
		return configured
	}
	return dryRun
}
